package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie names the cookie carrying the browser session id
	SessionCookie = "sara_session"
	sessionIDKey  = "session_id"
)

// SessionOptions configure the session cookie
type SessionOptions struct {
	MaxAge time.Duration
	Secure bool
}

// Session makes sure every request carries a session id, issuing a new
// cookie when the browser has none or sends one that is not a UUID.
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
		}

		// the cookie is refreshed on every request; the stored token still
		// expires SessionTTL after login
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sid, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)

		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

// SessionID returns the id set by Session, or "" outside of it.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
