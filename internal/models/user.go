package models

// User represents a registered voter account.
type User struct {
	// Username is the unique display name used for login.
	Username string `json:"username"`

	// PIN is the numeric login credential.
	//
	// NOTE: stored in plain text for compatibility with the existing login
	// contract. Known weakness; hashing would break nothing internally but
	// is deliberately out of scope.
	PIN int `json:"pin"`

	// ProfilePicture is an index into the client-side avatar set.
	ProfilePicture int `json:"profile_picture"`

	// IsAdmin marks accounts allowed to register new users.
	IsAdmin bool `json:"isAdmin"`

	// APIKey is the opaque bearer token identifying this user.
	// Generated server-side at creation and immutable afterwards; any
	// client-supplied value is discarded.
	APIKey string `json:"apikey"`
}

// Summary is the public projection of a User, safe to list without
// leaking the PIN or apikey.
type Summary struct {
	Username       string `json:"username"`
	ProfilePicture int    `json:"profile_picture"`
}

// Summary returns the user's public projection.
func (u User) Summary() Summary {
	return Summary{Username: u.Username, ProfilePicture: u.ProfilePicture}
}
