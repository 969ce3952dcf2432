package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// InternalAuthMiddleware validates service-to-service calls using the
// X-Internal-API-Key header. Keys are compared as SHA-256 digests so the
// comparison is constant time and leaks nothing about key length.
func InternalAuthMiddleware() gin.HandlerFunc {
	apiKey := os.Getenv("INTERNAL_API_KEY")
	if apiKey == "" {
		// Fail every request rather than run an open internal API
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "server misconfigured: INTERNAL_API_KEY not set",
			})
		}
	}
	expected := sha256.Sum256([]byte(apiKey))

	return func(c *gin.Context) {
		presented := sha256.Sum256([]byte(c.GetHeader("X-Internal-API-Key")))
		if subtle.ConstantTimeCompare(expected[:], presented[:]) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}
