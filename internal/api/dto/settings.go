package dto

// ThemeRequest sets the UI theme
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// ThemeResponse reports the UI theme
type ThemeResponse struct {
	Theme string `json:"theme"`
}
