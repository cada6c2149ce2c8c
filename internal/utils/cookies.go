package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WriteTokenCookies sets both token cookies on the response: httpOnly,
// SameSite=Strict, secure per deployment config.
func WriteTokenCookies(c *gin.Context, access, refresh string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenName, access, 0, "/", "", secure, true)
	c.SetCookie(RefreshTokenName, refresh, 0, "/", "", secure, true)
}

// ClearTokenCookies expires both token cookies unconditionally.
func ClearTokenCookies(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenName, "", -1, "/", "", secure, true)
	c.SetCookie(RefreshTokenName, "", -1, "/", "", secure, true)
}
