package settings

// Seed provides initial values used when no settings record exists yet.
type Seed struct {
	TelegramBotToken string
	TelegramChatID   string
}
