package session

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password too weak")
	ErrNotFound           = errors.New("user not found")
)

// Identity is the signed-in user as reported by the identity provider. The
// zero value means anonymous.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

func (i Identity) IsAnonymous() bool {
	return i.ID == ""
}
