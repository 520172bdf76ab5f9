package response

import (
	"log"
	"net/http"

	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Error writes the standardized error body {error: true, message: ...}.
// Internal errors are logged with detail but surfaced with a generic message
// so storage failures never leak to the caller.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		message = apperror.ErrComputationFailed.Error()
	}

	c.JSON(code, gin.H{"error": true, "message": message})
}

// Unauthorized writes the gate-level 401 rejection. Every authentication
// failure uses this exact shape regardless of cause.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   true,
		"message": apperror.ErrUnauthorized.Error(),
	})
}

// Forbidden writes the gate-level 403 rejection.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":   true,
		"message": apperror.ErrForbidden.Error(),
	})
}
