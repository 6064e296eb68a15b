package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "flavorfind_session"

// SetCookie writes the signed session cookie. MaxAge 0 keeps it a browser
// session cookie; the server-side record carries the real TTL.
func SetCookie(c *gin.Context, token string, secret []byte) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, Sign(token, secret), 0, "/", "", false, true)
}

// ClearCookie expires the session cookie immediately.
func ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// TokenFromCookie extracts and verifies the signed session cookie.
// It returns false when the cookie is absent, unsigned or tampered with.
func TokenFromCookie(c *gin.Context, secret []byte) (string, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return Verify(value, secret)
}
