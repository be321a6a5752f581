package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formbridge/formbridge/internal/auth"
	"github.com/formbridge/formbridge/internal/models"
)

func getAdminPage(t *testing.T, mux http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/app/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: adminToken(t)})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestAdminPage_RequiresSession(t *testing.T) {
	mux, _ := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/app/admin", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminPage_EmptyState(t *testing.T) {
	mux, _ := newTestEnv(t)

	rr := getAdminPage(t, mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No form submissions yet")
}

func TestAdminPage_RendersTable(t *testing.T) {
	mux, ds := newTestEnv(t)

	shop := "my-store"
	require.NoError(t, ds.CreateSubmission(&models.Submission{
		Name: "Jane Doe", Email: "jane@example.com", Phone: "555-1234", Shop: &shop,
	}))
	require.NoError(t, ds.CreateSubmission(&models.Submission{
		Name: "John Roe", Email: "john@example.com", Phone: "555-5678",
	}))

	rr := getAdminPage(t, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "All Submissions (2)")
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "555-1234")
	assert.Contains(t, body, "my-store")
	// Missing shop renders as a dash.
	assert.Contains(t, body, "&mdash;")
}

func TestAdminPage_ErrorBanner(t *testing.T) {
	mux := newTestRouter(t, failingDatastore{})

	rr := getAdminPage(t, mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch submissions")
	assert.NotContains(t, rr.Body.String(), "disk full")
}

func TestLoginPage_Public(t *testing.T) {
	mux, _ := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/app/login", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Admin Login")
}

func TestEmbedScript_Served(t *testing.T) {
	mux, _ := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/public/storefront-form-embed.js", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/api/public/submit")
	assert.Contains(t, rr.Body.String(), "form-builder-container")
}
