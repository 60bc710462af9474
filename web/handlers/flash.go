package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// setFlash stores a notice that is shown once on the next page render
func setFlash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString([]byte(message)), 60, "/", "", false, true)
}

// popFlash returns the pending notice, if any, and clears it
func popFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return ""
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	message, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return ""
	}
	return string(message)
}
