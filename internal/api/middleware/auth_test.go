package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	valid map[string]bool
}

func (f *fakeSessions) IsAdmin(token string) bool {
	return f.valid[token]
}

func nextHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuth_NoCookieRedirectsToLogin(t *testing.T) {
	var called bool
	handler := AdminAuth(&fakeSessions{})(nextHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestAdminAuth_InvalidTokenRedirects(t *testing.T) {
	var called bool
	sessions := &fakeSessions{valid: map[string]bool{"good": true}}
	handler := AdminAuth(sessions)(nextHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, called)
}

func TestAdminAuth_ValidTokenPassesThrough(t *testing.T) {
	var called bool
	sessions := &fakeSessions{valid: map[string]bool{"good": true}}
	handler := AdminAuth(sessions)(nextHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
