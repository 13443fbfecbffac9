package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/magno-tech/exercise-tracker/internal/api"
	"github.com/magno-tech/exercise-tracker/internal/api/handlers"
	"github.com/magno-tech/exercise-tracker/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.Migrate(db))
	return db
}

func newTestRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	h := handlers.New(
		repositories.NewUserRepository(db),
		repositories.NewExerciseRepository(db),
	)
	return api.NewRouter(h, cors.Options{AllowedOrigins: []string{"*"}}), db
}

func postJSON(t *testing.T, router http.Handler, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// registerUser creates (or fetches) a user through the API and returns its id.
func registerUser(t *testing.T, router http.Handler, username string) string {
	t.Helper()

	rec := postJSON(t, router, "/api/exercise/new-user", map[string]string{"username": username})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	id, ok := body["_id"].(string)
	require.True(t, ok, "response should carry a string _id")
	return id
}
