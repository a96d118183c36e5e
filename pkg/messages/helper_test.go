package messages

import (
	"time"

	"github.com/bitsacm/pollz-client/pkg/session"
)

var sampleUser = session.User{
	Id:    "21f7d2a0",
	Email: "alice@campus.example.com",
}

var sampleCreatedAt = time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC)

var sampleMessage = ChatMessage{
	Id:        "msg-1",
	Kind:      TEXT,
	Username:  "alice",
	UserId:    "21f7d2a0",
	Message:   "Hello",
	CreatedAt: sampleCreatedAt,
}
