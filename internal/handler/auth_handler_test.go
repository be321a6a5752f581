package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formbridge/formbridge/internal/auth"
)

func postLogin(mux http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestLogin_Success(t *testing.T) {
	mux, _ := newTestEnv(t)

	rr := postLogin(mux, `{"email":"admin@example.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(testJWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, testAdminEmail, claims.Email)

	// Session cookie set for the server-rendered admin pages.
	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, resp.Token, cookie.Value)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mux, _ := newTestEnv(t)

	for _, body := range []string{
		`{"email":"admin@example.com","password":"wrong"}`,
		`{"email":"intruder@example.com","password":"admin123"}`,
	} {
		rr := postLogin(mux, body)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid credentials")
	}
}

func TestLogin_BadRequest(t *testing.T) {
	mux, _ := newTestEnv(t)

	rr := postLogin(mux, `not-json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postLogin(mux, `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
