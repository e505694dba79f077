package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/customerdesk/internal/adapters/repo/sqldb"
	"github.com/phenrril/customerdesk/internal/config"
	"github.com/phenrril/customerdesk/internal/domain"
)

func setupApp(t *testing.T) *App {
	t.Helper()
	db, err := sqldb.Open(config.Database{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "customers.db")})
	require.NoError(t, err)

	a, err := NewApp(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	require.NoError(t, a.Migrate(context.Background()))
	return a
}

func TestApp_EndToEndSubmission(t *testing.T) {
	a := setupApp(t)
	h := a.HTTPHandler()

	body := `{"name":"  Ana Li ","birthday":"2001-09-15","email":"a@b.co","phone":"(555) 123-4567","address":" 1 Main St ","preferred_contact":"Email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	c, err := a.Customers.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana Li", c.Name)
	assert.Equal(t, "1 Main St", c.Address)
	assert.Equal(t, "(555) 123-4567", c.Phone)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `customerdesk_submissions_total{outcome="accepted"} 1`)
}

func TestApp_RejectedSubmissionWritesNothing(t *testing.T) {
	a := setupApp(t)

	_, err := a.CustomerUC.Submit(context.Background(), domain.CustomerInput{
		Name: "Ana Li", Birthday: "2001-09-15", Email: "a@b.co", Phone: "555-1234", Address: "1 Main St", PreferredContact: "Email",
	})
	require.True(t, domain.IsValidation(err))

	_, err = a.Customers.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
