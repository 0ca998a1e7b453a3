// Package auth handles apikey issuance and the admin gate.
//
// Credentials here are opaque bearer tokens (apikeys) generated
// server-side; there is no session or token-expiry machinery because the
// external contract is "login returns the apikey, the apikey is the
// identity".
package auth

import (
	"errors"

	"github.com/google/uuid"

	"github.com/tmusat/eurovote/internal/models"
)

var (
	// ErrNotAdmin is returned when an admin-gated action is attempted
	// without a valid admin credential.
	ErrNotAdmin = errors.New("admin credential required")
)

// NewKey returns a fresh opaque apikey for a user account.
func NewKey() string {
	return uuid.New().String()
}

// Directory is the user lookup surface the gate needs. This abstraction
// keeps the gate independent of how users are stored.
type Directory interface {
	// ByKey resolves an apikey to its user, reporting whether one exists.
	ByKey(key string) (models.User, bool)
}

// Gate authorizes admin-only actions by resolving an apikey against a user
// directory. It never mutates state.
type Gate struct {
	users Directory
}

// NewGate creates a gate over the given user directory.
func NewGate(users Directory) *Gate {
	return &Gate{users: users}
}

// RequireAdmin returns nil only when key belongs to an admin user.
func (g *Gate) RequireAdmin(key string) error {
	user, ok := g.users.ByKey(key)
	if !ok || !user.IsAdmin {
		return ErrNotAdmin
	}
	return nil
}
