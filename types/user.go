package types

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id"`

	// UserHandle is the login name chosen by the user. It doubles as
	// the display name on leaderboards.
	UserHandle string `json:"userHandle"`

	// Password stores the user's password in plaintext, mirroring the
	// original deployment. It is never exposed in API responses.
	Password string `json:"-"`
}
