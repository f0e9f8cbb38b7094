package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"maloga/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB opens an in-memory sqlite database with the full schema.
// Handlers take a nil Redis client in tests: caching and change
// notification are disabled.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.UserRole{},
		&domain.Listing{},
		&domain.Commission{},
		&domain.Question{},
		&domain.Answer{},
		&domain.Video{},
		&domain.VideoLike{},
		&domain.Slaughterhouse{},
		&domain.EducationalResource{},
	))
	return db
}

// testContext builds a gin context around a request, optionally with a
// JSON body. A non-zero userID simulates the JWT middleware having run.
func testContext(t *testing.T, w *httptest.ResponseRecorder, userID uint, method, target string, body any) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		req = httptest.NewRequest(method, target, &buf)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	if userID != 0 {
		c.Set("userID", userID)
	}
	return c
}

// decodeBody unmarshals the recorded JSON response into dest.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
