package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/auth"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "middleware-test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(repository.NewUserRepository(db), testSecret)

	r := gin.New()
	r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
	})
	r.GET("/admin-only", m.RequireAuth(), m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestRequireAuthRejections(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db)

	expired, err := auth.Issue("user@example.com", model.RoleStudent, testSecret, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"absent header", ""},
		{"malformed scheme", "NotBearer xyz"},
		{"missing token", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Every rejection shares one status and one body shape.
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error": true, "message": "unauthorized access"}`, w.Body.String())
		})
	}
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db)

	token, err := auth.Issue("user@example.com", model.RoleStudent, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email": "user@example.com"}`, w.Body.String())
}

func TestRequireAdminAllowsCurrentAdmin(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db)

	require.NoError(t, db.Create(&model.User{Email: "boss@example.com", Role: model.RoleAdmin}).Error)

	token, err := auth.Issue("boss@example.com", model.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// A role change after issuance must take effect without waiting for the
// token to expire: the stored role wins over the embedded claim.
func TestRequireAdminRejectsDemotedRole(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db)

	user := model.User{Email: "boss@example.com", Role: model.RoleAdmin}
	require.NoError(t, db.Create(&user).Error)

	token, err := auth.Issue("boss@example.com", model.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", "boss@example.com").
		Update("role", model.RoleStudent).Error)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": true, "message": "forbidden message"}`, w.Body.String())
}

func TestRequireAdminRejectsUnknownUser(t *testing.T) {
	db := openTestDB(t)
	r := newTestRouter(t, db)

	token, err := auth.Issue("ghost@example.com", model.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
