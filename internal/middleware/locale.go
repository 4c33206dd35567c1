package middleware

import (
	"insight-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale resolves the request language from the lang header, then Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langHeader := c.GetHeader("lang")
		if langHeader == "" {
			langHeader = c.GetHeader("Accept-Language")
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), locale.ParseLang(langHeader))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
