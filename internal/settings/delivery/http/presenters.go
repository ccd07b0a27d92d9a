package http

import (
	"strings"

	"social-arch/internal/model"
	"social-arch/internal/settings"
)

type settingsDTO struct {
	UserStyle            string `json:"userStyle"`
	TargetLanguage       string `json:"targetLanguage"`
	LLMSource            string `json:"llmSource"`
	CustomAPIURL         string `json:"customApiUrl"`
	CustomAPIKey         string `json:"customApiKey"`
	TelegramBotToken     string `json:"telegramBotToken"`
	TelegramChatID       string `json:"telegramChatId"`
	EnableDailyReminders bool   `json:"enableDailyReminders"`
	DailyReminderTime    string `json:"dailyReminderTime"`
	AutoMonitor          bool   `json:"autoMonitor"`
	TrendCategory        string `json:"trendCategory"`
}

func newSettingsResp(s model.Settings) settingsDTO {
	return settingsDTO{
		UserStyle:            s.UserStyle,
		TargetLanguage:       s.TargetLanguage,
		LLMSource:            string(s.LLMSource),
		CustomAPIURL:         s.CustomAPIURL,
		CustomAPIKey:         settings.MaskSecret(s.CustomAPIKey),
		TelegramBotToken:     settings.MaskSecret(s.TelegramBotToken),
		TelegramChatID:       s.TelegramChatID,
		EnableDailyReminders: s.EnableDailyReminders,
		DailyReminderTime:    s.DailyReminderTime,
		AutoMonitor:          s.AutoMonitor,
		TrendCategory:        string(s.TrendCategory),
	}
}

// toModel converts the request. Masked secrets pass through; Update keeps the stored value for them.
func (r settingsDTO) toModel() model.Settings {
	return model.Settings{
		UserStyle:            r.UserStyle,
		TargetLanguage:       r.TargetLanguage,
		LLMSource:            model.LLMSource(r.LLMSource),
		CustomAPIURL:         strings.TrimSpace(r.CustomAPIURL),
		CustomAPIKey:         strings.TrimSpace(r.CustomAPIKey),
		TelegramBotToken:     strings.TrimSpace(r.TelegramBotToken),
		TelegramChatID:       strings.TrimSpace(r.TelegramChatID),
		EnableDailyReminders: r.EnableDailyReminders,
		DailyReminderTime:    strings.TrimSpace(r.DailyReminderTime),
		AutoMonitor:          r.AutoMonitor,
		TrendCategory:        model.TrendCategory(r.TrendCategory),
	}
}
