package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CartSession)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, SessionKey(c))
	})
	return r
}

func TestCartSessionIssuesCookie(t *testing.T) {
	r := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Body.String(), "handler must see a session key")

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "a new visitor gets the session cookie")
	assert.Equal(t, w.Body.String(), cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestCartSessionReusesExistingCookie(t *testing.T) {
	r := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "existing-key"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "existing-key", w.Body.String())

	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, SessionCookie, c.Name, "no new cookie when one is present")
	}
}

func TestValidateAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ADMIN_API_KEY", "secret")

	r := gin.New()
	r.Use(ValidateAPIKey)
	r.GET("/admin/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"valid key", "secret", http.StatusOK},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tc.key != "" {
				req.Header.Set("X-API-KEY", tc.key)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
