package backend

import (
	"context"
	"net/url"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) ListDepartmentClubs(
	ctx context.Context, category string,
) ([]communication.DepartmentClubDtoResponse, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var out []communication.DepartmentClubDtoResponse
	err := c.get(ctx, "/main/departments-clubs/", query, &out)
	return out, err
}

func (c *clientImpl) VoteDepartmentClub(
	ctx context.Context, vote communication.DepartmentClubVoteDtoRequest,
) error {
	return c.post(ctx, "/main/departments-clubs/vote/", vote, nil)
}

func (c *clientImpl) CommentDepartmentClub(
	ctx context.Context, comment communication.DepartmentClubCommentDtoRequest,
) error {
	return c.post(ctx, "/main/departments-clubs/comment/", comment, nil)
}
