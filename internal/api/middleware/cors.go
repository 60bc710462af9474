package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// The API only serves GET and POST; uploads arrive as multipart bodies.
const (
	corsMethods = "GET, POST, OPTIONS"
	corsHeaders = "Accept, Content-Type, X-Request-ID"
	corsMaxAge  = "600"
)

// CORS lets the listed origins call the JSON API from a browser. "*" allows
// any origin; an empty list disables the headers entirely.
func CORS(allowOrigins []string) gin.HandlerFunc {
	wildcard := lo.Contains(allowOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case origin == "":
			c.Next()
			return
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case lo.Contains(allowOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		default:
			c.Next()
			return
		}
		c.Header("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", corsMethods)
			c.Header("Access-Control-Allow-Headers", corsHeaders)
			c.Header("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
