package communication

import "time"

type PositionDtoResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CandidateDtoResponse struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	Manifesto string `json:"manifesto"`
	VoteCount int    `json:"vote_count"`
}

type VoteDtoRequest struct {
	Position  string `json:"position"`
	Candidate string `json:"candidate"`
}

type VoteDtoResponse struct {
	Position  string    `json:"position"`
	Candidate string    `json:"candidate"`
	CreatedAt time.Time `json:"created_at"`
}
