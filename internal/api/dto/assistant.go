package dto

// SendMessageRequest is a chat message for the assistant
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,not_empty,max=4000"`
}

// VoiceCommandRequest carries a transcribed voice command
type VoiceCommandRequest struct {
	Command string `json:"command" validate:"required,not_empty,max=500"`
}

// VoiceCommandResponse names the tab the client should switch to
type VoiceCommandResponse struct {
	Tab string `json:"tab"`
}
