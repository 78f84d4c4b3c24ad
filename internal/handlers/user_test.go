package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yamakawa/task-tracker-api/internal/auth"
	"github.com/yamakawa/task-tracker-api/internal/middleware"
	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/repository"
	"github.com/yamakawa/task-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Task{}))

	handler := NewUserHandler(services.NewUserService(repository.NewUserRepository(db)))

	r := gin.New()
	r.PUT("/api/user/theme", middleware.RequireAuth(testSecret), handler.UpdateTheme)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, r
}

func putTheme(t *testing.T, r *gin.Engine, userID uint64, theme string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{"theme": theme})
	require.NoError(t, err)

	token, err := auth.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/user/theme", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_UpdateTheme(t *testing.T) {
	db, r := setupUserTestEnv(t)

	user := &models.User{
		Username:     "alice",
		PasswordHash: "hashedpassword",
		LastActiveAt: time.Now(),
		Theme:        models.ThemeLight,
	}
	require.NoError(t, db.Create(user).Error)

	w := putTheme(t, r, user.ID, "dark")
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	require.Equal(t, models.ThemeDark, updated.Theme)
}

func TestUserHandler_UpdateTheme_InvalidValue(t *testing.T) {
	db, r := setupUserTestEnv(t)

	user := &models.User{
		Username:     "alice",
		PasswordHash: "hashedpassword",
		LastActiveAt: time.Now(),
		Theme:        models.ThemeLight,
	}
	require.NoError(t, db.Create(user).Error)

	w := putTheme(t, r, user.ID, "neon")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var unchanged models.User
	require.NoError(t, db.First(&unchanged, user.ID).Error)
	require.Equal(t, models.ThemeLight, unchanged.Theme)
}
