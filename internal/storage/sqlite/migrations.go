package sqlite

import "database/sql"

// schema sets up the seed database tables. These run on startup so a fresh
// deployment gets a usable (if empty) contest file.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    pin INTEGER NOT NULL,
    profile_picture INTEGER NOT NULL DEFAULT 0,
    is_admin INTEGER NOT NULL DEFAULT 0,
    apikey TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS participants (
    id INTEGER PRIMARY KEY,
    year INTEGER NOT NULL,
    country TEXT NOT NULL,
    country_img TEXT NOT NULL DEFAULT '',
    name TEXT NOT NULL,
    song TEXT NOT NULL DEFAULT '',
    img TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT '',
    round_num INTEGER NOT NULL,
    turn INTEGER NOT NULL,
    UNIQUE (year, country)
);

CREATE INDEX IF NOT EXISTS idx_participants_round ON participants(round_num, turn);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
