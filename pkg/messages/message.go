package messages

import (
	"time"

	"github.com/bitsacm/pollz-client/pkg/session"
)

type Kind string

const (
	TEXT            Kind = "text"
	SUPERCHAT       Kind = "superchat"
	RECENT_MESSAGES Kind = "recent_messages"
)

// ChatMessage is one event as broadcast by the chat service. Amount is
// only meaningful for superchat messages.
type ChatMessage struct {
	Id        string    `json:"id,omitempty"`
	Kind      Kind      `json:"type"`
	Username  string    `json:"username"`
	UserId    string    `json:"user_id,omitempty"`
	Message   string    `json:"message"`
	Amount    float64   `json:"amount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Outbound is the frame sent to the chat service. CreatedAt is stamped
// at send time by the connection manager, not by the caller.
type Outbound struct {
	Kind      Kind      `json:"type"`
	Message   string    `json:"message"`
	Username  string    `json:"username"`
	UserId    string    `json:"user_id"`
	Amount    float64   `json:"amount,omitempty"`
	PaymentId string    `json:"payment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTextMessage builds an outbound text frame. The author identity is
// always taken from the session user, never from the input.
func NewTextMessage(user session.User, body string) Outbound {
	return Outbound{
		Kind:     TEXT,
		Message:  body,
		Username: user.DisplayName(),
		UserId:   user.Id,
	}
}

// NewSuperChatMessage builds an outbound superchat frame carrying the
// paid amount and the identifier returned by the payment gateway.
func NewSuperChatMessage(
	user session.User, body string, amount float64, paymentId string,
) Outbound {
	return Outbound{
		Kind:      SUPERCHAT,
		Message:   body,
		Username:  user.DisplayName(),
		UserId:    user.Id,
		Amount:    amount,
		PaymentId: paymentId,
	}
}
