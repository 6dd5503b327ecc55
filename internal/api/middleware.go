package api

import (
	"crypto/subtle"
	"net/http"

	"catalog-service/config"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// corsMiddleware runs go-chi/cors inside gin. Preflight requests are answered
// by cors and never reach a route.
func corsMiddleware(adminHeader string) gin.HandlerFunc {
	policy := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", adminHeader, "Idempotency-Key"},
		MaxAge:         300,
	})

	return func(c *gin.Context) {
		passed := false
		policy.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)

		if !passed {
			c.Abort()
		}
	}
}

// adminGuard requires the configured shared secret in the admin header.
// With no secret configured every request is rejected.
func adminGuard(admin config.AdminConfig, logger *zap.Logger) gin.HandlerFunc {
	secret := []byte(admin.APIKey)

	return func(c *gin.Context) {
		key := c.GetHeader(admin.Header)
		if len(secret) == 0 || key == "" || subtle.ConstantTimeCompare([]byte(key), secret) != 1 {
			util.AdminAuthFailuresTotal.Inc()
			logger.Warn("Rejected admin request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.String("client_ip", c.ClientIP()),
				zap.Bool("key_present", key != ""))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
