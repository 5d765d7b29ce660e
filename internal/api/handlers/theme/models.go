package theme

// ThemeResponse текущая тема оформления
type ThemeResponse struct {
	Theme string `json:"theme"` // "dark" | "light"
}

// SetThemeRequest запрос на смену темы
type SetThemeRequest struct {
	Theme string `json:"theme"`
}
