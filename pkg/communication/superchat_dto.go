package communication

import "time"

// SuperChatHighlightDtoResponse is one entry of the ranked paid
// highlights shown next to the chat. Highlights are polled over HTTP,
// not delivered on the chat connection.
type SuperChatHighlightDtoResponse struct {
	Amount    float64   `json:"amount"`
	User      string    `json:"user"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SuperChatOrderDtoRequest struct {
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

type SuperChatOrderDtoResponse struct {
	OrderId  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
