package chat

import (
	"fmt"
	"net/url"
	"time"

	"github.com/bitsacm/pollz-client/pkg/session"
)

type Config struct {
	// The base url of the chat service, e.g. ws://localhost:1401.
	ChatServiceUrl string

	User session.User

	MaxReconnectAttempts int
	ReconnectBaseDelay   time.Duration
	ReconnectMaxDelay    time.Duration

	DialTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ChatServiceUrl: "ws://localhost:1401",

		MaxReconnectAttempts: 5,
		ReconnectBaseDelay:   1 * time.Second,
		ReconnectMaxDelay:    30 * time.Second,

		DialTimeout: 10 * time.Second,
	}
}

func (c Config) liveChatUrl() string {
	query := url.Values{}
	query.Set("user_id", c.User.Id)
	query.Set("username", c.User.DisplayName())

	return fmt.Sprintf("%s/ws/chat/live?%s", c.ChatServiceUrl, query.Encode())
}
