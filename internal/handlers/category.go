package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yamakawa/task-tracker-api/internal/dto"
	apierrors "github.com/yamakawa/task-tracker-api/internal/errors"
	"github.com/yamakawa/task-tracker-api/internal/middleware"
	"github.com/yamakawa/task-tracker-api/internal/services"
)

// CategoryHandler coordinates category HTTP handlers.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories returns all of the user's categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	categories, err := h.categoryService.ListCategories(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTOs(categories))
}

// CreateCategory creates a category, enforcing the per-user quota.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CategoryRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Error creating category.")
		return
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryDTO(*category))
}

// UpdateCategory renames a category and propagates the new name to the
// user's tasks.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Category not found.")
		return
	}

	type CategoryRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Error updating category.")
		return
	}

	category, err := h.categoryService.RenameCategory(userID, categoryID, req.Name)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*category))
}

// DeleteCategory removes a category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Category not found.")
		return
	}

	if err := h.categoryService.DeleteCategory(userID, categoryID); err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully.",
	})
}

func respondCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, "Category not found.")
	case errors.Is(err, services.ErrCategoryNameRequired):
		apierrors.BadRequest(c, "Category name is required.")
	case errors.Is(err, services.ErrCategoryQuotaExceeded):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeQuotaExceeded, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
