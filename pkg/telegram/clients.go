package telegram

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultClientCacheSize = 8

// Clients hands out one Bot per token. The token lives in user settings and
// may change at any time, so callers resolve a client on every use.
type Clients struct {
	baseURL string
	cache   *lru.Cache[string, *Bot]
}

// NewClients creates a client cache against baseURL (empty means the public API).
func NewClients(baseURL string, size int) (*Clients, error) {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if size <= 0 {
		size = defaultClientCacheSize
	}
	cache, err := lru.New[string, *Bot](size)
	if err != nil {
		return nil, err
	}
	return &Clients{baseURL: baseURL, cache: cache}, nil
}

// For returns the cached client for token, creating it on first use.
func (c *Clients) For(token string) *Bot {
	if bot, ok := c.cache.Get(token); ok {
		return bot
	}
	bot := newBot(c.baseURL, token)
	c.cache.Add(token, bot)
	return bot
}
