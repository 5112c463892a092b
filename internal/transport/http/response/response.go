package response

import "github.com/gin-gonic/gin"

// Helpers emitting the public wire shapes: {success, ...} on the happy path,
// {errors: [...]} for aggregated field validation, {error: "..."} for a
// single failure.

func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

func ValidationFailed(c *gin.Context, errs interface{}) {
	c.JSON(400, gin.H{"errors": errs})
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

// Internal hides failure detail behind an opaque message; callers log the
// real error server-side.
func Internal(c *gin.Context) {
	Error(c, 500, "Internal Server Error")
}
