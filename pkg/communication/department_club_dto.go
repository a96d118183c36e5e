package communication

type DepartmentClubDtoResponse struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	VoteCount int    `json:"vote_count"`
}

type DepartmentClubVoteDtoRequest struct {
	Item string `json:"item"`
}

type DepartmentClubCommentDtoRequest struct {
	Item    string `json:"item"`
	Comment string `json:"comment"`
}
