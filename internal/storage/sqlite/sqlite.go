// Package sqlite provides the contest seed store: the SQLite file holding
// the lineup and the bootstrap accounts that get loaded into the in-memory
// stores at startup. Scoring itself never touches this database; records
// live in process memory for the lifetime of a run.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/tmusat/eurovote/internal/models"
)

// SeedStore reads and writes the contest seed database.
type SeedStore struct {
	db *sql.DB
}

// Open creates a SeedStore for the given database path. It creates the
// parent directories and runs migrations automatically.
func Open(dbPath string) (*SeedStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SeedStore{db: db}, nil
}

// Close closes the database connection.
func (s *SeedStore) Close() error {
	return s.db.Close()
}

// Users returns every seeded user account.
func (s *SeedStore) Users(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT username, pin, profile_picture, is_admin, apikey FROM users ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.PIN, &u.ProfilePicture, &u.IsAdmin, &u.APIKey); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// InsertUser persists a user account into the seed database.
func (s *SeedStore) InsertUser(ctx context.Context, u models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, pin, profile_picture, is_admin, apikey) VALUES (?, ?, ?, ?, ?)",
		u.Username, u.PIN, u.ProfilePicture, u.IsAdmin, u.APIKey,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
	}
	return nil
}

// EnsureAdmin guarantees an admin account with the given username exists,
// creating it with a fresh apikey when missing. It reports whether a new
// account was created, so a cold start is never locked out of add_user.
func (s *SeedStore) EnsureAdmin(ctx context.Context, username string, pin int) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username = ?", username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists > 0 {
		return false, nil
	}

	admin := models.User{
		Username: username,
		PIN:      pin,
		IsAdmin:  true,
		APIKey:   uuid.New().String(),
	}
	if err := s.InsertUser(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}

// Participants returns the contest lineup ordered by round and turn.
func (s *SeedStore) Participants(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, year, country, country_img, name, song, img, url, round_num, turn
		 FROM participants ORDER BY round_num, turn`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	var lineup []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(
			&p.ID, &p.Year, &p.Country, &p.CountryImg,
			&p.Name, &p.Song, &p.Img, &p.URL, &p.RoundNum, &p.Turn,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		lineup = append(lineup, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return lineup, nil
}

// InsertParticipant persists one lineup entry.
func (s *SeedStore) InsertParticipant(ctx context.Context, p models.Participant) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO participants (id, year, country, country_img, name, song, img, url, round_num, turn)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Year, p.Country, p.CountryImg, p.Name, p.Song, p.Img, p.URL, p.RoundNum, p.Turn,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant %q: %w", p.Country, err)
	}
	return nil
}
