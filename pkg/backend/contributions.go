package backend

import (
	"context"

	"github.com/bitsacm/pollz-client/pkg/communication"
)

func (c *clientImpl) GetProjectInfo(
	ctx context.Context,
) (communication.ProjectInfoDtoResponse, error) {
	var out communication.ProjectInfoDtoResponse
	err := c.get(ctx, "/main/contributions/project-info/", nil, &out)
	return out, err
}

func (c *clientImpl) ListContributors(
	ctx context.Context,
) (communication.ContributorsDtoResponse, error) {
	var out communication.ContributorsDtoResponse

	// The lightweight listing is not available on older deployments,
	// in which case the full listing still is.
	err := c.get(ctx, "/main/contributions/github-contributors-basic/", nil, &out)
	if err == nil {
		return out, nil
	}

	err = c.get(ctx, "/main/contributions/github-contributors/", nil, &out)
	return out, err
}
