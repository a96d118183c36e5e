package backend

import (
	"context"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) ListSuperChats(
	ctx context.Context,
) ([]communication.SuperChatHighlightDtoResponse, error) {
	var out []communication.SuperChatHighlightDtoResponse
	err := c.get(ctx, "/superchat/get-super-chats/", nil, &out)
	return out, err
}

func (c *clientImpl) CreateSuperChatOrder(
	ctx context.Context, order communication.SuperChatOrderDtoRequest,
) (communication.SuperChatOrderDtoResponse, error) {
	var out communication.SuperChatOrderDtoResponse
	err := c.post(ctx, "/superchat/create-order/", order, &out)
	return out, err
}
