package backend

import (
	"context"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) GetProfile(ctx context.Context) (communication.ProfileDtoResponse, error) {
	var out communication.ProfileDtoResponse
	err := c.get(ctx, "/main/auth/profile/", nil, &out)
	return out, err
}

func (c *clientImpl) Logout(ctx context.Context) error {
	return c.post(ctx, "/main/auth/logout/", struct{}{}, nil)
}
