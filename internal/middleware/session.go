package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware attaches a session id to every request. The id comes
// from the X-Session-ID header or a sessionId query parameter; anonymous
// requests get a fresh id, echoed back in the response header so the client
// can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = c.Query("sessionId")
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set("session_id", sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session ID from gin context
func GetSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
