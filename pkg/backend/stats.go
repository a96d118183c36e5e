package backend

import (
	"context"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) GetStats(ctx context.Context) (communication.StatsDtoResponse, error) {
	var out communication.StatsDtoResponse
	err := c.get(ctx, "/main/stats/", nil, &out)
	return out, err
}

func (c *clientImpl) GetDashboard(ctx context.Context) (communication.DashboardDtoResponse, error) {
	var out communication.DashboardDtoResponse
	err := c.get(ctx, "/main/stats/dashboard/", nil, &out)
	return out, err
}
