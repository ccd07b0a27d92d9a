package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultAPIURL = "https://api.telegram.org"

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// newBot is reached through Clients.For; tokens come from user settings.
func newBot(baseURL, token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", strings.TrimRight(baseURL, "/"), token),
		httpClient: &http.Client{},
	}
}

// Token returns the bot token the client was created with.
func (b *Bot) Token() string {
	return b.token
}

// GetUpdates fetches updates with update_id >= offset. The request is bounded
// by timeout; Telegram is asked to hold the long poll slightly shorter so an
// empty poll returns normally instead of hitting the deadline.
func (b *Bot) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	hold := int((timeout - time.Second) / time.Second)
	if hold < 0 {
		hold = 0
	}

	req := GetUpdatesRequest{
		Offset:         offset,
		Timeout:        hold,
		AllowedUpdates: []string{"message"},
	}

	var updates []Update
	if err := b.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// GetMe returns the bot's own user record. The /status reply uses it as a live token check.
func (b *Bot) GetMe(ctx context.Context) (*User, error) {
	var me User
	if err := b.call(ctx, "getMe", struct{}{}, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// DeleteWebhook removes a registered webhook; getUpdates is rejected while one is set.
func (b *Bot) DeleteWebhook(ctx context.Context) error {
	return b.call(ctx, "deleteWebhook", map[string]bool{"drop_pending_updates": false}, nil)
}

// SendMarkdown sends a message rendered with the legacy Markdown parse mode.
func (b *Bot) SendMarkdown(ctx context.Context, chatID string, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, ParseModeMarkdown)
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID string, text string, parseMode string) error {
	if chatID == "" {
		return ErrNoChat
	}
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}
	if err := b.call(ctx, "sendMessage", payload, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// call POSTs payload to method and decodes the result field into out when non-nil.
func (b *Bot) call(ctx context.Context, method string, payload any, out any) error {
	if b.token == "" {
		return ErrNoToken
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/%s", b.apiURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram %s: read body: %w", method, err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return &APIError{Method: method, Code: resp.StatusCode, Description: string(raw)}
		}
		return fmt.Errorf("telegram %s: decode response: %w", method, err)
	}
	if !apiResp.OK || resp.StatusCode != http.StatusOK {
		code := apiResp.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, Code: code, Description: apiResp.Description}
	}

	if out != nil && len(apiResp.Result) > 0 {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}
	return nil
}
