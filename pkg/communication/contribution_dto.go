package communication

type RepositoryDtoResponse struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	GithubUrl string `json:"github_url"`
}

type ProjectInfoDtoResponse struct {
	Repositories []RepositoryDtoResponse `json:"repositories"`
}

type ContributorDtoResponse struct {
	Username           string `json:"username"`
	Name               string `json:"name"`
	AvatarUrl          string `json:"avatar_url"`
	ContributionsCount int    `json:"contributions_count"`
	TotalCommits       int    `json:"total_commits"`
}

// ContributorsDtoResponse groups the project's contributors: the
// creators are listed separately from the regular contributors, with
// the full list kept alongside.
type ContributorsDtoResponse struct {
	Contributors        []ContributorDtoResponse `json:"contributors"`
	Creators            []ContributorDtoResponse `json:"creators"`
	RegularContributors []ContributorDtoResponse `json:"regular_contributors"`
}
