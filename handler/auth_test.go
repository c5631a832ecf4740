package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Tweeter/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestAuth_RegisterLoginMe(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	w := s.do(http.MethodGet, "/api/auth/me/", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", gjson.Get(w.Body.String(), "username").String())
	assert.False(t, gjson.Get(w.Body.String(), "password").Exists())
}

func TestAuth_DuplicateUsername(t *testing.T) {
	s := newTestServer(t)
	s.login("alice")

	w := s.do(http.MethodPost, "/api/auth/register/", `{"username":"alice","password":"secret123"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username already taken", gjson.Get(w.Body.String(), "error").String())
}

func TestAuth_WrongPassword(t *testing.T) {
	s := newTestServer(t)
	s.login("alice")

	w := s.do(http.MethodPost, "/api/auth/login/", `{"username":"alice","password":"nope-nope"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "error").Exists())
}

func TestAuth_CredentialSchemes(t *testing.T) {
	s := newTestServer(t)
	token := s.login("alice")

	tests := []struct {
		name  string
		setup func(r *http.Request)
		code  int
	}{
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK},
		{"token", func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) }, http.StatusOK},
		{"session cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
		}, http.StatusOK},
		{"anonymous", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"unknown scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) }, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me/", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			s.engine.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestAuth_LoginSetsSessionCookie(t *testing.T) {
	s := newTestServer(t)
	s.login("alice")

	w := s.do(http.MethodPost, "/api/auth/login/", `{"username":"alice","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, gjson.Get(w.Body.String(), "token").String(), session.Value)
}
