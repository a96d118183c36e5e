package messages

import (
	"testing"

	"github.com/bitsacm/pollz-client/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestUnit_NewTextMessage(t *testing.T) {
	actual := NewTextMessage(sampleUser, "Hello")

	expected := Outbound{
		Kind:     TEXT,
		Message:  "Hello",
		Username: "alice",
		UserId:   "21f7d2a0",
	}
	assert.Equal(t, expected, actual)
}

func TestUnit_NewTextMessage_WhenUserHasNoEmail_ExpectAnonymousUsername(t *testing.T) {
	user := session.User{
		Id: "21f7d2a0",
	}

	actual := NewTextMessage(user, "Hello")

	assert.Equal(t, "Anonymous", actual.Username)
}

func TestUnit_NewSuperChatMessage(t *testing.T) {
	actual := NewSuperChatMessage(sampleUser, "Go team!", 150, "pay_x1")

	expected := Outbound{
		Kind:      SUPERCHAT,
		Message:   "Go team!",
		Username:  "alice",
		UserId:    "21f7d2a0",
		Amount:    150,
		PaymentId: "pay_x1",
	}
	assert.Equal(t, expected, actual)
}
