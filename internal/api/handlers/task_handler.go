package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for the daily planner
type TaskHandler struct {
	service tasks.Service
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(service tasks.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListTasks godoc
// @Summary List planner tasks
// @Tags tasks
// @Produce json
// @Success 200 {object} dto.TaskListResponse
// @Router /api/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{"data": dto.TaskListResponse{
		Tasks:    h.service.ListTasks(ctx),
		Progress: h.service.Progress(ctx),
	}})
}

// CreateTask godoc
// @Summary Add a task to the plan
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} tasks.Task
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	req, ok := bindRequest[dto.CreateTaskRequest](c)
	if !ok {
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), ToCreateTaskInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": task})
}

// UpdateTask godoc
// @Summary Edit a task
// @Tags tasks
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.UpdateTaskRequest](c)
	if !ok {
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), id, ToUpdateTaskInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": task})
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.service.ToggleTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": task})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "task")
	if !ok {
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}
