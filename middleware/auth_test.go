package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("watchlist", cookie.NewStore([]byte("test-secret"))))
	r.GET("/session", func(c *gin.Context) {
		s := sessions.Default(c)
		s.Set(SessionKeyEmail, "u@example.com")
		s.Set(SessionKeyUserID, "u1")
		_ = s.Save()
		c.Status(http.StatusNoContent)
	})
	r.GET("/private", RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})
	return r
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	r := guardedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	r := guardedRouter()

	// Establish a session first, then replay its cookie.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/session", nil)
	r.ServeHTTP(w, req)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/private", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}
