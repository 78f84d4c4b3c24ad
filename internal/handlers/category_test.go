package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yamakawa/task-tracker-api/internal/auth"
	"github.com/yamakawa/task-tracker-api/internal/constants"
	"github.com/yamakawa/task-tracker-api/internal/database"
	"github.com/yamakawa/task-tracker-api/internal/dto"
	"github.com/yamakawa/task-tracker-api/internal/middleware"
	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/repository"
	"github.com/yamakawa/task-tracker-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// CategoryHandlerTestSuite defines the test suite for CategoryHandler
type CategoryHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *CategoryHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Category{}, &models.Task{})
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	categoryRepo := repository.NewCategoryRepository(suite.db)
	handler := NewCategoryHandler(services.NewCategoryService(categoryRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	categories := suite.router.Group("/api/categories")
	categories.Use(middleware.RequireAuth(testSecret))
	{
		categories.GET("", handler.ListCategories)
		categories.POST("", handler.CreateCategory)
		categories.PUT("/:id", handler.UpdateCategory)
		categories.DELETE("/:id", handler.DeleteCategory)
	}
}

// TearDownTest runs after each test
func (suite *CategoryHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *CategoryHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
		LastActiveAt: time.Now(),
		Theme:        models.ThemeLight,
	}
	suite.db.Create(user)
	return user
}

func (suite *CategoryHandlerTestSuite) createTestCategory(userID uint64, name string) *models.Category {
	category := &models.Category{
		UserID: userID,
		Name:   name,
	}
	suite.db.Create(category)
	return category
}

func (suite *CategoryHandlerTestSuite) createTestTask(userID uint64, title, category string) *models.Task {
	task := &models.Task{
		UserID:   userID,
		Title:    title,
		Category: category,
	}
	suite.db.Create(task)
	return task
}

func (suite *CategoryHandlerTestSuite) doRequest(method, url string, body any, userID uint64) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	token, err := auth.GenerateToken(userID, testSecret, time.Hour)
	suite.Require().NoError(err)

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CategoryHandlerTestSuite) TestListCategories_OnlyOwn() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	suite.createTestCategory(alice.ID, "Work")
	suite.createTestCategory(alice.ID, "Home")
	suite.createTestCategory(bob.ID, "Secret")

	w := suite.doRequest(http.MethodGet, "/api/categories", nil, alice.ID)
	suite.Equal(http.StatusOK, w.Code)

	var response []dto.CategoryDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response, 2)
	for _, c := range response {
		suite.NotEqual("Secret", c.Name)
	}
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory() {
	alice := suite.createTestUser("alice")

	w := suite.doRequest(http.MethodPost, "/api/categories", map[string]string{"name": "Work"}, alice.ID)
	suite.Equal(http.StatusCreated, w.Code)

	var response dto.CategoryDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Work", response.Name)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_QuotaExceeded() {
	alice := suite.createTestUser("alice")
	for i := 0; i < constants.MaxCategoriesPerUser; i++ {
		suite.createTestCategory(alice.ID, fmt.Sprintf("Category %d", i))
	}

	w := suite.doRequest(http.MethodPost, "/api/categories", map[string]string{"name": "One too many"}, alice.ID)
	suite.Equal(http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.Category{}).Where("user_id = ?", alice.ID).Count(&count)
	suite.Equal(int64(constants.MaxCategoriesPerUser), count)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_QuotaPerUser() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	for i := 0; i < constants.MaxCategoriesPerUser; i++ {
		suite.createTestCategory(alice.ID, fmt.Sprintf("Category %d", i))
	}

	// Alice's quota does not block Bob
	w := suite.doRequest(http.MethodPost, "/api/categories", map[string]string{"name": "Work"}, bob.ID)
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestUpdateCategory_PropagatesToTasks() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	category := suite.createTestCategory(alice.ID, "Work")
	suite.createTestTask(alice.ID, "Report", "Work")
	suite.createTestTask(alice.ID, "Meeting", "Work")
	suite.createTestTask(alice.ID, "Laundry", "Home")
	bobTask := suite.createTestTask(bob.ID, "Bob's report", "Work")

	w := suite.doRequest(http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID),
		map[string]string{"name": "Office"}, alice.ID)
	suite.Equal(http.StatusOK, w.Code)

	var renamed int64
	suite.db.Model(&models.Task{}).
		Where("user_id = ? AND category = ?", alice.ID, "Office").
		Count(&renamed)
	suite.Equal(int64(2), renamed)

	var untouched models.Task
	suite.db.First(&untouched, bobTask.ID)
	suite.Equal("Work", untouched.Category)

	var other models.Task
	suite.db.Where("user_id = ? AND title = ?", alice.ID, "Laundry").First(&other)
	suite.Equal("Home", other.Category)
}

func (suite *CategoryHandlerTestSuite) TestUpdateCategory_NotOwned() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	category := suite.createTestCategory(bob.ID, "Secret")

	// Not-owned looks exactly like missing
	w := suite.doRequest(http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID),
		map[string]string{"name": "Stolen"}, alice.ID)
	suite.Equal(http.StatusNotFound, w.Code)

	var unchanged models.Category
	suite.db.First(&unchanged, category.ID)
	suite.Equal("Secret", unchanged.Name)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory() {
	alice := suite.createTestUser("alice")
	category := suite.createTestCategory(alice.ID, "Work")

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, alice.ID)
	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NotOwned() {
	alice := suite.createTestUser("alice")
	bob := suite.createTestUser("bob")
	category := suite.createTestCategory(bob.ID, "Secret")

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, alice.ID)
	suite.Equal(http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestCategoryHandlerTestSuite runs the test suite
func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
