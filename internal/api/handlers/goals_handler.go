package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/goals"
	"github.com/gin-gonic/gin"
)

// GoalsHandler handles HTTP requests for goals and their subtasks
type GoalsHandler struct {
	service goals.Service
}

// NewGoalsHandler creates a new GoalsHandler instance
func NewGoalsHandler(service goals.Service) *GoalsHandler {
	return &GoalsHandler{service: service}
}

func (h *GoalsHandler) respond(c *gin.Context, status int, goal *goals.Goal) {
	days, err := h.service.DaysUntilDeadline(c.Request.Context(), goal.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{"data": GoalToResponse(goal, days)})
}

// ListGoals godoc
// @Summary List goals with days left until each deadline
// @Tags goals
// @Router /api/goals [get]
func (h *GoalsHandler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()
	list := h.service.ListGoals(ctx)

	resp := make([]dto.GoalResponse, 0, len(list))
	for i := range list {
		days, err := h.service.DaysUntilDeadline(ctx, list[i].ID)
		if err != nil {
			continue
		}
		resp = append(resp, GoalToResponse(&list[i], days))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Param goal body dto.CreateGoalRequest true "Goal creation request"
// @Router /api/goals [post]
func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	req, ok := bindRequest[dto.CreateGoalRequest](c)
	if !ok {
		return
	}

	goal, err := h.service.CreateGoal(c.Request.Context(), ToCreateGoalInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, goal)
}

func (h *GoalsHandler) GetGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "goal")
	if !ok {
		return
	}

	goal, err := h.service.GetGoal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, goal)
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "goal")
	if !ok {
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted successfully"})
}

// UpdateGoalStatus godoc
// @Summary Move a goal to active, completed, paused or cancelled
// @Tags goals
// @Router /api/goals/{id}/status [put]
func (h *GoalsHandler) UpdateGoalStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "goal")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.UpdateGoalStatusRequest](c)
	if !ok {
		return
	}

	goal, err := h.service.SetStatus(c.Request.Context(), id, goals.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, goal)
}

// AddSubtask godoc
// @Summary Add a subtask; progress is recomputed
// @Tags goals
// @Router /api/goals/{id}/subtasks [post]
func (h *GoalsHandler) AddSubtask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "goal")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.CreateSubtaskRequest](c)
	if !ok {
		return
	}

	goal, err := h.service.AddSubtask(c.Request.Context(), id, ToCreateSubtaskInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, goal)
}

func (h *GoalsHandler) ToggleSubtask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "goal")
	if !ok {
		return
	}
	subtaskID, ok := parseIDParam(c, "subtaskId", "subtask")
	if !ok {
		return
	}

	goal, err := h.service.ToggleSubtask(c.Request.Context(), id, subtaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, goal)
}

func (h *GoalsHandler) DeleteSubtask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "goal")
	if !ok {
		return
	}
	subtaskID, ok := parseIDParam(c, "subtaskId", "subtask")
	if !ok {
		return
	}

	goal, err := h.service.DeleteSubtask(c.Request.Context(), id, subtaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respond(c, http.StatusOK, goal)
}
