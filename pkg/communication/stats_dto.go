package communication

type StatsDtoResponse struct {
	TotalVotes    int `json:"total_votes"`
	TotalComments int `json:"total_comments"`
	ActiveUsers   int `json:"active_users"`
}

type DashboardDtoResponse struct {
	Stats         StatsDtoResponse `json:"stats"`
	VotesToday    int              `json:"votes_today"`
	CommentsToday int              `json:"comments_today"`
}
