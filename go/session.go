package orderingserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the cart session for API clients.
	SessionHeader = "X-Session-ID"
	// SessionCookie carries the cart session for browsers.
	SessionCookie = "session_id"

	sessionContextKey = "orderingserver.session_id"
	sessionMaxAge     = 7 * 24 * 60 * 60
)

// SessionMiddleware resolves the cart session from the header or cookie,
// minting a new UUID when neither is present, and echoes it in both.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = strings.TrimSpace(cookie)
			}
		}
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}
		c.Set(sessionContextKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		c.Next()
	}
}

// SessionID returns the session resolved by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
