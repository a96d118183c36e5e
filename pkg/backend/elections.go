package backend

import (
	"context"
	"net/url"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) ListPositions(ctx context.Context) ([]communication.PositionDtoResponse, error) {
	var out []communication.PositionDtoResponse
	err := c.get(ctx, "/main/elections/positions/", nil, &out)
	return out, err
}

func (c *clientImpl) ListCandidates(
	ctx context.Context, position string,
) ([]communication.CandidateDtoResponse, error) {
	query := url.Values{}
	if position != "" {
		query.Set("position", position)
	}

	var out []communication.CandidateDtoResponse
	err := c.get(ctx, "/main/elections/candidates/", query, &out)
	return out, err
}

func (c *clientImpl) CastVote(ctx context.Context, vote communication.VoteDtoRequest) error {
	return c.post(ctx, "/main/elections/vote/", vote, nil)
}

func (c *clientImpl) ListMyVotes(ctx context.Context) ([]communication.VoteDtoResponse, error) {
	var out []communication.VoteDtoResponse
	err := c.get(ctx, "/main/elections/my-votes/", nil, &out)
	return out, err
}
