package service

import (
	"fmt"
	"log/slog"

	"github.com/tmusat/eurovote/internal/auth"
	"github.com/tmusat/eurovote/internal/models"
	"github.com/tmusat/eurovote/internal/store"
)

// UserService owns the user store: listing, admin-gated registration,
// apikey lookup and login.
type UserService struct {
	store *store.Store[models.User]
	gate  *auth.Gate
}

// Ensure UserService can back the admin gate.
var _ auth.Directory = (*UserService)(nil)

// NewUserService creates a UserService over the given store.
func NewUserService(s *store.Store[models.User]) *UserService {
	svc := &UserService{store: s}
	svc.gate = auth.NewGate(svc)
	return svc
}

// List returns the public projection of every user, in insertion order.
// The PIN and apikey never leave through this path.
func (s *UserService) List() []models.Summary {
	users := s.store.All()
	out := make([]models.Summary, len(users))
	for i, u := range users {
		out[i] = u.Summary()
	}
	return out
}

// ByKey resolves an apikey to its user. Implements auth.Directory.
func (s *UserService) ByKey(key string) (models.User, bool) {
	return s.store.First(func(u models.User) bool { return u.APIKey == key })
}

// Get returns the user owning the given apikey.
func (s *UserService) Get(key string) (models.User, error) {
	user, ok := s.ByKey(key)
	if !ok {
		return models.User{}, fmt.Errorf("%w: unknown apikey", ErrNotFound)
	}
	return user, nil
}

// Create registers a new user. The actor identified by actorKey must be an
// admin, the username must be novel, and any client-supplied apikey is
// discarded in favor of a fresh server-generated one. The uniqueness check
// and the insert are a single atomic store operation, so two concurrent
// registrations of one username cannot both land.
func (s *UserService) Create(actorKey string, user models.User) (models.User, error) {
	if err := s.gate.RequireAdmin(actorKey); err != nil {
		slog.Warn("user creation refused", "username", user.Username, "error", err)
		return models.User{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if user.Username == "" {
		return models.User{}, fmt.Errorf("%w: username must not be empty", ErrValidation)
	}

	user.APIKey = auth.NewKey()
	_, added := s.store.AddIfAbsent(func(u models.User) bool {
		return u.Username == user.Username
	}, user)
	if !added {
		slog.Warn("user creation refused", "username", user.Username, "error", "username taken")
		return models.User{}, fmt.Errorf("%w: user %q already exists", ErrConflict, user.Username)
	}

	slog.Info("user created", "username", user.Username, "is_admin", user.IsAdmin)
	return user, nil
}

// Login matches a username/PIN pair and returns the account's apikey. A
// miss is not an error: ok is false and the boundary renders a null key.
func (s *UserService) Login(username string, pin int) (apikey string, ok bool) {
	user, ok := s.store.First(func(u models.User) bool {
		return u.Username == username && u.PIN == pin
	})
	if !ok {
		slog.Info("login failed", "username", username)
		return "", false
	}
	slog.Info("login succeeded", "username", username)
	return user.APIKey, true
}
