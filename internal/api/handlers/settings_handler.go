package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles the persisted UI theme
type SettingsHandler struct {
	service settings.Service
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(service settings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetTheme(c *gin.Context) {
	theme := h.service.Theme(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": dto.ThemeResponse{Theme: string(theme)}})
}

func (h *SettingsHandler) SetTheme(c *gin.Context) {
	req, ok := bindRequest[dto.ThemeRequest](c)
	if !ok {
		return
	}

	theme := settings.Theme(req.Theme)
	if err := h.service.SetTheme(c.Request.Context(), theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ThemeResponse{Theme: string(theme)}})
}

func (h *SettingsHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.service.ToggleTheme(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ThemeResponse{Theme: string(theme)}})
}
