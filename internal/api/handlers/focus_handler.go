package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/focus"
	"github.com/focusflow/focusflow/internal/domain/notes"
	"github.com/gin-gonic/gin"
)

// FocusHandler handles focus session history, the pomodoro timer and the
// scratchpad note shown next to it
type FocusHandler struct {
	service focus.Service
	timer   *focus.Timer
	notes   notes.Service
}

// NewFocusHandler creates a new FocusHandler instance
func NewFocusHandler(service focus.Service, timer *focus.Timer, notes notes.Service) *FocusHandler {
	return &FocusHandler{service: service, timer: timer, notes: notes}
}

// ListSessions godoc
// @Summary List focus sessions and total focused minutes
// @Tags focus
// @Success 200 {object} dto.SessionListResponse
// @Router /api/focus/sessions [get]
func (h *FocusHandler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{"data": dto.SessionListResponse{
		Sessions:          h.service.ListSessions(ctx),
		TotalFocusMinutes: h.service.TotalFocusMinutes(ctx),
	}})
}

// RecordSession godoc
// @Summary Record a focus session finished outside the built-in timer
// @Tags focus
// @Router /api/focus/sessions [post]
func (h *FocusHandler) RecordSession(c *gin.Context) {
	req, ok := bindRequest[dto.RecordSessionRequest](c)
	if !ok {
		return
	}

	session, err := h.service.RecordSession(c.Request.Context(), ToRecordSessionInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": session})
}

func (h *FocusHandler) GetTimer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.timer.State()})
}

func (h *FocusHandler) StartTimer(c *gin.Context) {
	if err := h.timer.Start(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.timer.State()})
}

func (h *FocusHandler) PauseTimer(c *gin.Context) {
	if err := h.timer.Pause(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.timer.State()})
}

func (h *FocusHandler) ResetTimer(c *gin.Context) {
	h.timer.Reset()
	c.JSON(http.StatusOK, gin.H{"data": h.timer.State()})
}

// SelectPreset godoc
// @Summary Choose the work duration; only allowed while the timer is stopped
// @Tags focus
// @Router /api/focus/timer/preset [post]
func (h *FocusHandler) SelectPreset(c *gin.Context) {
	req, ok := bindRequest[dto.SelectPresetRequest](c)
	if !ok {
		return
	}

	if err := h.timer.SelectPreset(req.Minutes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.timer.State()})
}

// UpdateTimerSettings godoc
// @Summary Change the work, break and long-break lengths of the timer
// @Tags focus
// @Router /api/focus/timer/settings [put]
func (h *FocusHandler) UpdateTimerSettings(c *gin.Context) {
	req, ok := bindRequest[dto.UpdateTimerSettingsRequest](c)
	if !ok {
		return
	}

	if err := h.timer.UpdateSettings(ToTimerSettings(req)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.timer.State()})
}

func (h *FocusHandler) GetNote(c *gin.Context) {
	note, err := h.notes.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": note})
}

// SaveNote godoc
// @Summary Replace the focus scratchpad content
// @Tags focus
// @Router /api/focus/notes [put]
func (h *FocusHandler) SaveNote(c *gin.Context) {
	req, ok := bindRequest[dto.SaveNoteRequest](c)
	if !ok {
		return
	}

	note, err := h.notes.Save(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": note})
}
