package service

import (
	"context"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/bitsacm/pollz-client/pkg/communication"
	"github.com/bitsacm/pollz-client/pkg/messages"
)

// MinSuperChatAmount is the smallest accepted superchat, matching what
// the backend enforces when creating the payment order.
const MinSuperChatAmount = 10

type orderCreator interface {
	CreateSuperChatOrder(
		ctx context.Context, order communication.SuperChatOrderDtoRequest,
	) (communication.SuperChatOrderDtoResponse, error)
}

// SuperChatService validates a superchat request and creates the
// corresponding payment order with the backend. The actual checkout
// happens in the external payment gateway: once it succeeds, the
// resulting payment id is sent along the superchat message through the
// chat session.
type SuperChatService interface {
	CreateOrder(ctx context.Context, amount float64, body string) (communication.SuperChatOrderDtoResponse, error)
}

type superChatServiceImpl struct {
	backend orderCreator
}

func NewSuperChatService(backend orderCreator) SuperChatService {
	return &superChatServiceImpl{
		backend: backend,
	}
}

func (s *superChatServiceImpl) CreateOrder(
	ctx context.Context, amount float64, body string,
) (communication.SuperChatOrderDtoResponse, error) {
	if amount < MinSuperChatAmount {
		return communication.SuperChatOrderDtoResponse{},
			errors.NewCode(ErrSuperChatAmountTooLow)
	}

	if err := messages.ValidateBody(body); err != nil {
		return communication.SuperChatOrderDtoResponse{}, err
	}

	order := communication.SuperChatOrderDtoRequest{
		Amount:  amount,
		Message: body,
	}
	return s.backend.CreateSuperChatOrder(ctx, order)
}
