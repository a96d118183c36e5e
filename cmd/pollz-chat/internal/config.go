package internal

import (
	"time"

	"github.com/bitsacm/pollz-client/pkg/backend"
	"github.com/bitsacm/pollz-client/pkg/chat"
)

type Configuration struct {
	Chat                  chat.Config
	Backend               backend.Config
	HighlightPollInterval time.Duration
}

func DefaultConfig() Configuration {
	return Configuration{
		Chat:                  chat.DefaultConfig(),
		Backend:               backend.DefaultConfig(),
		HighlightPollInterval: 30 * time.Second,
	}
}
