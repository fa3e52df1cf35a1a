package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/journal"
	"github.com/gin-gonic/gin"
)

// JournalHandler handles HTTP requests for daily journal entries
type JournalHandler struct {
	service journal.Service
}

// NewJournalHandler creates a new JournalHandler instance
func NewJournalHandler(service journal.Service) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.ListEntries(c.Request.Context())})
}

// SaveEntry godoc
// @Summary Create or replace the entry for a day (today when date is omitted)
// @Tags journal
// @Router /api/journal [put]
func (h *JournalHandler) SaveEntry(c *gin.Context) {
	req, ok := bindRequest[dto.SaveJournalRequest](c)
	if !ok {
		return
	}

	entry, err := h.service.SaveEntry(c.Request.Context(), ToSaveEntryInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

func (h *JournalHandler) GetEntry(c *gin.Context) {
	entry, err := h.service.GetEntry(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	if err := h.service.DeleteEntry(c.Request.Context(), c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "journal entry deleted successfully"})
}
