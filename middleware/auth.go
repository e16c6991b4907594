package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys shared between the guard and the handlers.
const (
	SessionKeyEmail  = "email"
	SessionKeyUserID = "user_id"
	SessionKeyTheme  = "theme"
)

// RequireLogin gates a route on an established session. A request whose
// session carries no email is redirected to the login page and the handler
// chain is aborted; otherwise the request passes through untouched.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email, _ := session.Get(SessionKeyEmail).(string)
		if email == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the session's user id, or "" when not logged in.
func CurrentUserID(c *gin.Context) string {
	id, _ := sessions.Default(c).Get(SessionKeyUserID).(string)
	return id
}
