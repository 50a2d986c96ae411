package ui

import (
	"github.com/gin-gonic/gin"

	"netcompare/domain/core"
)

const sessionCookie = "ncmp_session"

// sessionMiddleware assigns each browser a session ID used to tie
// affiliate clicks to later conversions. The cookie is set once and
// echoed into the request context for handlers.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := c.Cookie(sessionCookie)
		if err != nil || session == "" {
			session = string(core.NewSessionID())
			c.SetCookie(sessionCookie, session, 60*60*24*30, "/", "", false, true)
		}
		c.Set("session_id", session)
		c.Next()
	}
}

// sessionID returns the session assigned by the middleware
func sessionID(c *gin.Context) core.SessionID {
	if v, ok := c.Get("session_id"); ok {
		if s, ok := v.(string); ok {
			return core.SessionID(s)
		}
	}
	return ""
}
