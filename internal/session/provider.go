package session

// Session is an authenticated identity plus the token that proves it on later
// requests.
type Session struct {
	Identity Identity `json:"identity"`
	Token    string   `json:"token"`
}

// Profile carries the fields a new account is created with.
type Profile struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Provider is the remote identity service. The storefront treats it as
// opaque: it only consumes these operations and maps their errors.
type Provider interface {
	// GetSession validates a previously issued token and returns the session
	// it belongs to.
	GetSession(token string) (Session, error)
	SignInWithPassword(email, password string) (Session, error)
	// SignUp creates the account but does not sign it in; the account is
	// pending confirmation until the first sign-in.
	SignUp(profile Profile) (Identity, error)
	SignOut(token string) error
	GetProfile(userID string) (Identity, error)
}
