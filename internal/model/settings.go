package model

// LLMSource selects the generation backend.
type LLMSource string

const (
	LLMSourceCloudGemini LLMSource = "Cloud Gemini"
	LLMSourceLocal       LLMSource = "Local LLM"
	LLMSourceCustomAPI   LLMSource = "Custom API"
)

// Valid reports whether s is one of the known backends.
func (s LLMSource) Valid() bool {
	switch s {
	case LLMSourceCloudGemini, LLMSourceLocal, LLMSourceCustomAPI:
		return true
	}
	return false
}

// Settings is the single user configuration record edited by the UI.
type Settings struct {
	UserStyle            string        `json:"userStyle"`
	TargetLanguage       string        `json:"targetLanguage"`
	LLMSource            LLMSource     `json:"llmSource"`
	CustomAPIURL         string        `json:"customApiUrl"`
	CustomAPIKey         string        `json:"customApiKey"`
	TelegramBotToken     string        `json:"telegramBotToken"`
	TelegramChatID       string        `json:"telegramChatId"`
	EnableDailyReminders bool          `json:"enableDailyReminders"`
	DailyReminderTime    string        `json:"dailyReminderTime"` // HH:MM, server local time
	AutoMonitor          bool          `json:"autoMonitor"`
	TrendCategory        TrendCategory `json:"trendCategory"`
}

// DefaultSettings mirrors the dashboard defaults.
func DefaultSettings() Settings {
	return Settings{
		UserStyle:            "Casual, professional, enthusiastic about 3D art, technical but accessible.",
		TargetLanguage:       "Russian",
		LLMSource:            LLMSourceCloudGemini,
		CustomAPIURL:         "http://localhost:11434/v1/chat/completions",
		EnableDailyReminders: false,
		DailyReminderTime:    "09:00",
		TrendCategory:        TrendCategoryGeneral,
	}
}
