package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// CORSOptions builds the CORS policy from CORS_ALLOWED_ORIGINS (comma
// separated). An unset variable allows every origin.
func CORSOptions(logger zerolog.Logger) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", RequestIDHeader},
		MaxAge:         86400,
	}

	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		opts.AllowedOrigins = []string{"*"}
		return opts
	}
	for _, o := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(o)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			logger.Warn().Msg("CORS wildcard origin (*) is insecure; use specific origins in production")
		}
		opts.AllowedOrigins = append(opts.AllowedOrigins, trimmed)
	}
	logger.Debug().Strs("allowed_origins", opts.AllowedOrigins).Msg("CORS configuration applied")
	return opts
}

// CORS adapts an rs/cors policy to gin. Preflight requests are answered
// here and never reach the handlers.
func CORS(opts cors.Options) gin.HandlerFunc {
	policy := cors.New(opts)
	return func(c *gin.Context) {
		policy.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
