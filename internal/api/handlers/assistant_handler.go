package handlers

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/dto"
	"github.com/focusflow/focusflow/internal/domain/assistant"
	"github.com/gin-gonic/gin"
)

// AssistantHandler handles the chat log and voice command routing
type AssistantHandler struct {
	service assistant.Service
}

// NewAssistantHandler creates a new AssistantHandler instance
func NewAssistantHandler(service assistant.Service) *AssistantHandler {
	return &AssistantHandler{service: service}
}

func (h *AssistantHandler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.Messages(c.Request.Context())})
}

// SendMessage godoc
// @Summary Send a chat message and wait for the reply
// @Description A reply containing a timed schedule replaces the planner tasks
// @Tags assistant
// @Param message body dto.SendMessageRequest true "Message"
// @Router /api/assistant/messages [post]
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	req, ok := bindRequest[dto.SendMessageRequest](c)
	if !ok {
		return
	}

	result, err := h.service.Send(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": result})
}

func (h *AssistantHandler) ClearMessages(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation cleared"})
}

// VoiceCommand godoc
// @Summary Map a spoken command to a tab
// @Tags assistant
// @Success 200 {object} dto.VoiceCommandResponse
// @Router /api/assistant/voice [post]
func (h *AssistantHandler) VoiceCommand(c *gin.Context) {
	req, ok := bindRequest[dto.VoiceCommandRequest](c)
	if !ok {
		return
	}

	tab, err := h.service.RouteVoiceCommand(c.Request.Context(), req.Command)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.VoiceCommandResponse{Tab: string(tab)}})
}
