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
	"github.com/yamakawa/task-tracker-api/internal/utils"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the user's tasks. Without page/limit query parameters
// the full list comes back; with them, a paginated envelope.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params, paginated := utils.GetPaginationParams(c)

	var paramsPtr *utils.PaginationParams
	if paginated {
		paramsPtr = &params
	}

	tasks, total, err := h.taskService.ListTasks(userID, paramsPtr)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	if paginated {
		c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Page, params.Limit, total))
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type TaskRequest struct {
		Title    string `json:"title" binding:"required"`
		Category string `json:"category" binding:"required"`
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Error creating task.")
		return
	}

	task, err := h.taskService.CreateTask(userID, services.CreateTaskInput{
		Title:    req.Title,
		Category: req.Category,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update; toggling completion manages the
// completion timestamp.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Task not found.")
		return
	}

	type TaskUpdateRequest struct {
		Title     *string `json:"title"`
		Category  *string `json:"category"`
		Completed *bool   `json:"completed"`
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Error updating task.")
		return
	}

	task, err := h.taskService.UpdateTask(userID, taskID, services.UpdateTaskInput{
		Title:     req.Title,
		Category:  req.Category,
		Completed: req.Completed,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Task not found.")
		return
	}

	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully.",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found.")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, "Title is required.")
	case errors.Is(err, services.ErrTaskCategoryRequired):
		apierrors.BadRequest(c, "Category is required.")
	default:
		apierrors.InternalError(c, "")
	}
}
