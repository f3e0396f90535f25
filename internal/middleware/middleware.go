package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealmentor/internal/session"
)

const (
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session"
)

// SessionMiddleware resolves the X-Session-ID header to a live session.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Session header is required",
				"error":   "Missing " + SessionHeader + " header; create one with POST /sessions",
			})
			c.Abort()
			return
		}

		sess, err := store.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Session not found",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("session_id", sess.ID)
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
