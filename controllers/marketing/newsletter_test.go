package marketingControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/newsletter", Subscribe(nil))

	w := postJSON(r, "/api/newsletter", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}

func TestSubscribeNewEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "newsletter_subscribers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := gin.New()
	r.POST("/api/newsletter", Subscribe(db))

	w := postJSON(r, "/api/newsletter", `{"email":"amy@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully subscribed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeDuplicateEmailIsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "newsletter_subscribers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "amy@example.com"))

	r := gin.New()
	r.POST("/api/newsletter", Subscribe(db))

	w := postJSON(r, "/api/newsletter", `{"email":"amy@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already subscribed")
	require.NoError(t, mock.ExpectationsWereMet())
}
