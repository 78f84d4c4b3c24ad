package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yamakawa/task-tracker-api/internal/errors"
	"github.com/yamakawa/task-tracker-api/internal/middleware"
	"github.com/yamakawa/task-tracker-api/internal/models"
	"github.com/yamakawa/task-tracker-api/internal/services"
)

// UserHandler coordinates user preference HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdateTheme sets the authenticated user's display theme.
func (h *UserHandler) UpdateTheme(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ThemeRequest struct {
		Theme models.Theme `json:"theme" binding:"required"`
	}

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid theme.")
		return
	}

	if err := h.userService.UpdateTheme(userID, req.Theme); err != nil {
		if errors.Is(err, services.ErrInvalidTheme) {
			apierrors.BadRequest(c, "Invalid theme.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme updated successfully.",
	})
}
