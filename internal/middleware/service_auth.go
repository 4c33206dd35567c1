package middleware

import (
	"crypto/subtle"
	"strings"

	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	headerServiceKey   = "X-Service-Key"
	ContextServiceName = "service_name"
)

// ServiceAuth validates the encrypted X-Service-Key header ("serviceName:key")
// used by internal callers.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		serviceKey := c.GetHeader(headerServiceKey)
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		decryptedKey, err := m.encrypter.Decrypt(serviceKey)
		if err != nil {
			m.l.Warnf(ctx, "middleware.ServiceAuth: Decrypt: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName, keyValue, ok := strings.Cut(decryptedKey, ":")
		if !ok {
			m.l.Warnf(ctx, "middleware.ServiceAuth: invalid key format")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		configuredKey, exists := m.serviceKeys[serviceName]
		if !exists {
			m.l.Warnf(ctx, "middleware.ServiceAuth: unknown service: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Key values are never logged
		if subtle.ConstantTimeCompare([]byte(keyValue), []byte(configuredKey)) != 1 {
			m.l.Warnf(ctx, "middleware.ServiceAuth: key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ContextServiceName, serviceName)
		c.Next()
	}
}
