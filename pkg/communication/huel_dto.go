package communication

// A huel is a humanities elective course students rate and vote on.

type HuelDtoResponse struct {
	Id            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Department    string  `json:"department"`
	AverageRating float64 `json:"average_rating"`
	TotalVotes    int     `json:"total_votes"`
}

type HuelRatingDtoRequest struct {
	Huel   string `json:"huel"`
	Rating int    `json:"rating"`
}

type HuelVoteDtoRequest struct {
	Huel string `json:"huel"`
}

type HuelCommentDtoRequest struct {
	Huel    string `json:"huel"`
	Comment string `json:"comment"`
}
