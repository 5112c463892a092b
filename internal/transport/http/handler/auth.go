package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doubtconnect/internal/app"
	"doubtconnect/internal/transport/http/middleware"
	"doubtconnect/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
	userService *app.UserService
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	City      string `json:"city"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResendTokenRequest struct {
	Email string `json:"email"`
}

func NewAuthHandler(authService *app.AuthService, userService *app.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, []app.FieldError{{Field: "body", Message: "invalid request payload"}})
		return
	}

	result, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
	})
	if err != nil {
		var verrs app.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			response.ValidationFailed(c, verrs)
		case errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, "A user with this email already exists.")
		case errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusBadRequest, "This username is already taken.")
		default:
			log.Printf("register failed: %v", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, gin.H{"message": result.Message})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, []app.FieldError{{Field: "body", Message: "invalid request payload"}})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var verrs app.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			response.ValidationFailed(c, verrs)
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusBadRequest, "Enter the valid Username/Password")
		case errors.Is(err, app.ErrNotVerified):
			response.Error(c, http.StatusUnauthorized, "Email is not verified, please click on resend")
		default:
			log.Printf("login failed: %v", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, gin.H{"authtoken": result.AuthToken})
}

// GetUser returns the authenticated user's own record.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "Please authenticate using a valid token")
			return
		}
		log.Printf("get current user failed: %v", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Confirm consumes a verification link: GET /confirmation/:email/:token.
func (h *AuthHandler) Confirm(c *gin.Context) {
	email := c.Param("email")
	token := c.Param("token")

	if err := h.authService.ConfirmEmail(c.Request.Context(), email, token); err != nil {
		if errors.Is(err, app.ErrTokenRejected) {
			response.Error(c, http.StatusBadRequest, "Verification link is invalid or has expired")
			return
		}
		log.Printf("confirm email failed: %v", err)
		response.Internal(c)
		return
	}

	response.Success(c, gin.H{"message": "Your account has been verified. You can log in now."})
}

func (h *AuthHandler) ResendToken(c *gin.Context) {
	var req ResendTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		response.ValidationFailed(c, []app.FieldError{{Field: "email", Message: "Email cannot be empty"}})
		return
	}

	if err := h.authService.ResendToken(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, app.ErrAlreadyVerified):
			response.Error(c, http.StatusBadRequest, "This account has already been verified. Please log in.")
		case errors.Is(err, app.ErrResendCooldown):
			response.Error(c, http.StatusTooManyRequests, "A verification email was sent recently. Please wait before retrying.")
		default:
			log.Printf("resend token failed: %v", err)
			response.Internal(c)
		}
		return
	}

	// Unknown emails get the same reply as known ones.
	response.Success(c, gin.H{"message": "If an unverified account exists for that email, a new verification email has been sent."})
}
