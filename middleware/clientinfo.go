package middleware

import (
	"log"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// ClientInfoMiddleware parses the User-Agent header and writes one
// access log line per request including the client details.
func ClientInfoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		browser, os, device := utils.ParseUserAgent(c.Request.UserAgent())
		c.Set("client_browser", browser)
		c.Set("client_os", os)
		c.Set("client_device", device)

		c.Next()

		log.Printf("%s %s %d (%s, %s, %s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			browser, os, device)
	}
}
