package backend

import (
	"context"
	"net/url"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) ListHuels(
	ctx context.Context, department string,
) ([]communication.HuelDtoResponse, error) {
	query := url.Values{}
	if department != "" {
		query.Set("department", department)
	}

	var out []communication.HuelDtoResponse
	err := c.get(ctx, "/main/huels/", query, &out)
	return out, err
}

func (c *clientImpl) RateHuel(ctx context.Context, rating communication.HuelRatingDtoRequest) error {
	return c.post(ctx, "/main/huels/rate/", rating, nil)
}

func (c *clientImpl) VoteHuel(ctx context.Context, vote communication.HuelVoteDtoRequest) error {
	return c.post(ctx, "/main/huels/vote/", vote, nil)
}

func (c *clientImpl) CommentHuel(ctx context.Context, comment communication.HuelCommentDtoRequest) error {
	return c.post(ctx, "/main/huels/comment/", comment, nil)
}
