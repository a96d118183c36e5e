package session

import "strings"

const anonymousDisplayName = "Anonymous"

type User struct {
	Id    string
	Email string
	Name  string
}

func (u User) LoggedIn() bool {
	return u.Id != ""
}

// DisplayName returns the name used to identify the user in the chat.
// It is derived from the local part of the email address and falls back
// to a generic name when no email is known.
func (u User) DisplayName() string {
	if u.Email == "" {
		return anonymousDisplayName
	}

	local, _, found := strings.Cut(u.Email, "@")
	if !found || local == "" {
		return anonymousDisplayName
	}

	return local
}
