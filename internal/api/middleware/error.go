package middleware

import (
	"fmt"
	"net/http"

	"sun-to-sort/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler middleware recovers panics and answers with INTERNAL_ERROR.
func ErrorHandler(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprint(recovered)).
			Msg("recovered from panic")

		message := "An unexpected error occurred"
		if msg, ok := recovered.(string); ok {
			message = msg
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInternal,
				Message: message,
			},
		})
	})
}
