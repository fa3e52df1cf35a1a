package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/habits"
	"github.com/gin-gonic/gin"
)

// HabitsHandler handles HTTP requests for habits operations
type HabitsHandler struct {
	service habits.Service
}

// NewHabitsHandler creates a new HabitsHandler instance
func NewHabitsHandler(service habits.Service) *HabitsHandler {
	return &HabitsHandler{service: service}
}

// CreateHabit godoc
// @Summary Create a new habit
// @Description Create a new habit with the provided information
// @Tags habits
// @Accept json
// @Produce json
// @Param habit body dto.CreateHabitRequest true "Habit creation request"
// @Success 201 {object} dto.HabitResponse "Habit created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits [post]
func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	req, ok := bindRequest[dto.CreateHabitRequest](c)
	if !ok {
		return
	}

	created, err := h.service.CreateHabit(c.Request.Context(), ToCreateHabitInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": HabitToResponse(created, false)})
}

// GetHabit godoc
// @Summary Get a habit by ID
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID" format(uuid)
// @Success 200 {object} dto.HabitResponse
// @Failure 404 {object} map[string]string "Habit not found"
// @Router /api/habits/{id} [get]
func (h *HabitsHandler) GetHabit(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "habit")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	habit, err := h.service.GetHabit(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": HabitToResponse(habit, h.service.IsCompletedToday(ctx, id))})
}

// ListHabits godoc
// @Summary List habits with today's completion state and total xp
// @Tags habits
// @Produce json
// @Success 200 {object} dto.HabitListResponse
// @Router /api/habits [get]
func (h *HabitsHandler) ListHabits(c *gin.Context) {
	ctx := c.Request.Context()
	list := h.service.ListHabits(ctx)

	resp := dto.HabitListResponse{
		Habits:         make([]dto.HabitResponse, 0, len(list)),
		TotalCount:     len(list),
		CompletedToday: h.service.CompletedTodayCount(ctx),
		TotalXP:        h.service.TotalXP(ctx),
	}
	for i := range list {
		resp.Habits = append(resp.Habits, HabitToResponse(&list[i], h.service.IsCompletedToday(ctx, list[i].ID)))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// DeleteHabit godoc
// @Summary Delete a habit and its completion history
// @Tags habits
// @Router /api/habits/{id} [delete]
func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "habit")
	if !ok {
		return
	}

	if err := h.service.DeleteHabit(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "habit deleted successfully"})
}

// ToggleHabit godoc
// @Summary Flip today's completion for a habit
// @Tags habits
// @Produce json
// @Success 200 {object} dto.HabitToggleResponse
// @Router /api/habits/{id}/toggle [post]
func (h *HabitsHandler) ToggleHabit(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "habit")
	if !ok {
		return
	}

	result, err := h.service.ToggleHabit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.HabitToggleResponse{
		Habit:       HabitToResponse(&result.Habit, result.Completed),
		Completed:   result.Completed,
		XPDelta:     result.XPDelta,
		BonusEarned: result.BonusEarned,
	}})
}

// GetHabitHeatmap godoc
// @Summary Completion counts per day
// @Tags habits
// @Param period query string false "week, month or year" default(year)
// @Success 200 {object} dto.HeatmapResponse
// @Router /api/habits/heatmap [get]
func (h *HabitsHandler) GetHabitHeatmap(c *gin.Context) {
	query, ok := bindQuery[dto.HeatmapQuery](c)
	if !ok {
		return
	}
	period := query.Period
	if period == "" {
		period = "year"
	}

	data := h.service.GetHeatmapData(c.Request.Context(), period)
	c.JSON(http.StatusOK, gin.H{"data": HeatmapToResponse(data, period)})
}
