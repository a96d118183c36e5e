package chat

import (
	"testing"

	"github.com/bitsacm/pollz-client/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestUnit_Config_LiveChatUrl(t *testing.T) {
	config := DefaultConfig()
	config.User = session.User{
		Id:    "21f7d2a0",
		Email: "alice@campus.example.com",
	}

	actual := config.liveChatUrl()

	assert.Equal(
		t,
		"ws://localhost:1401/ws/chat/live?user_id=21f7d2a0&username=alice",
		actual,
	)
}

func TestUnit_Config_LiveChatUrl_WhenNoUser_ExpectAnonymous(t *testing.T) {
	config := DefaultConfig()

	actual := config.liveChatUrl()

	assert.Equal(
		t,
		"ws://localhost:1401/ws/chat/live?user_id=&username=Anonymous",
		actual,
	)
}
