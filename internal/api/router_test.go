package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/magno-tech/exercise-tracker/internal/api"
	"github.com/magno-tech/exercise-tracker/internal/api/handlers"
	"github.com/magno-tech/exercise-tracker/internal/repositories"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repositories.Migrate(db))

	h := handlers.New(
		repositories.NewUserRepository(db),
		repositories.NewExerciseRepository(db),
	)
	return api.NewRouter(h, cors.Options{AllowedOrigins: []string{"*"}})
}

func TestDeveloperEndpoint(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/developer", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Leo Vargas", body["developer"])
	assert.Equal(t, "Magno Technologies", body["company"])
}

func TestUnmatchedRouteIs404PlainText(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exercise/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
