package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie identifies the anonymous shopper; the cart and the
	// shopper's orders are keyed by its value.
	SessionCookie = "cart_session"

	// SessionKeyContext is the gin context key the handlers read.
	SessionKeyContext = "session_key"

	sessionMaxAge = 60 * 60 * 24 * 30 // 30 days
)

// CartSession ensures every request carries a session key, issuing a new
// opaque one when the cookie is absent.
func CartSession(c *gin.Context) {
	key, err := c.Cookie(SessionCookie)
	if err != nil || key == "" {
		key = uuid.NewString()
		c.SetCookie(SessionCookie, key, sessionMaxAge, "/", "", false, true)
	}
	c.Set(SessionKeyContext, key)
	c.Next()
}

// SessionKey returns the session key set by CartSession.
func SessionKey(c *gin.Context) string {
	return c.GetString(SessionKeyContext)
}
