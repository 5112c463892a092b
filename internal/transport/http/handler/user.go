package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"doubtconnect/internal/app"
	"doubtconnect/internal/model"
	"doubtconnect/internal/transport/http/middleware"
	"doubtconnect/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, svcErr := h.userService.GetByID(c.Request.Context(), uint(id))
	if svcErr != nil {
		h.renderLookupError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByUsername(c *gin.Context) {
	user, err := h.userService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateSettings applies a partial profile update for the authenticated
// user. Only the fields present in the body change.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}

	var update model.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		response.ValidationFailed(c, []app.FieldError{{Field: "body", Message: "invalid request payload"}})
		return
	}

	user, err := h.userService.UpdateSettings(c.Request.Context(), userID, update)
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) renderLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "Invalid user lookup")
	default:
		log.Printf("user lookup failed: %v", err)
		response.Internal(c)
	}
}
