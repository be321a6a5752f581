package handler_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/formbridge/formbridge/internal/auth"
	"github.com/formbridge/formbridge/internal/handler"
	"github.com/formbridge/formbridge/internal/models"
	"github.com/formbridge/formbridge/internal/router"
	"github.com/formbridge/formbridge/internal/storage"
)

const (
	testAdminEmail = "admin@example.com"
	testAdminPass  = "admin123"
	testJWTSecret  = "test-secret"
)

// newTestEnv wires a full router against a throwaway sqlite datastore so
// tests exercise the real middleware chain.
func newTestEnv(t *testing.T) (*chi.Mux, *storage.DataBase) {
	t.Helper()

	ds, err := storage.NewDataBase(filepath.Join(t.TempDir(), "formbridge_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ds.Close() })

	return newTestRouter(t, ds), ds
}

func newTestRouter(t *testing.T, ds storage.Datastore) *chi.Mux {
	t.Helper()

	log := zaptest.NewLogger(t)

	hash, err := auth.HashPassword(testAdminPass)
	require.NoError(t, err)

	authH := handler.NewAuthHandler(testAdminEmail, hash, testJWTSecret, log)
	intakeH := handler.NewIntakeHandler(ds, log)
	subH := handler.NewSubmissionHandler(ds, log)
	adminH, err := handler.NewAdminHandler(ds, log)
	require.NoError(t, err)

	return router.New(log, testJWTSecret, authH, intakeH, subH, adminH)
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(testJWTSecret, testAdminEmail)
	require.NoError(t, err)
	return token
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// failingDatastore simulates a broken storage backend.
type failingDatastore struct{}

func (failingDatastore) CreateSubmission(*models.Submission) error {
	return errors.New("disk full")
}

func (failingDatastore) ListSubmissions() ([]models.Submission, error) {
	return nil, errors.New("disk full")
}
