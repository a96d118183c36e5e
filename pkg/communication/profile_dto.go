package communication

import "github.com/bitsacm/pollz-client/pkg/session"

type ProfileDtoResponse struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func ToUser(profile ProfileDtoResponse) session.User {
	return session.User{
		Id:    profile.Id,
		Email: profile.Email,
		Name:  profile.Name,
	}
}
