package models

// SessionState describes the lifecycle of the active session.
type SessionState string

const (
	// SessionLoading is reported until the persisted session has been read
	// at startup.
	SessionLoading SessionState = "loading"
	// SessionNone means no account is logged in.
	SessionNone SessionState = "no_session"
	// SessionActive means an account is logged in.
	SessionActive SessionState = "active"
)

// SessionInfo is the transport view of the session state.
type SessionInfo struct {
	State   SessionState `json:"state"`
	Account *Account     `json:"account,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up request payload. ConfirmPassword is optional
// for API callers; when present it must match Password.
type Registration struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// PasswordChange is the change-password request payload.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
