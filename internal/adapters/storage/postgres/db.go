package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql)
// y asegura el esquema.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			id            TEXT PRIMARY KEY,
			owner_user_id TEXT NOT NULL,
			entry_type    TEXT NOT NULL,
			specimen      TEXT NOT NULL DEFAULT '',
			species       TEXT NOT NULL DEFAULT '',
			date          TIMESTAMPTZ NOT NULL,
			stage         TEXT NOT NULL DEFAULT '',
			old_size      DOUBLE PRECISION,
			new_size      DOUBLE PRECISION,
			humidity      DOUBLE PRECISION,
			temperature   DOUBLE PRECISION,
			temp_unit     TEXT NOT NULL DEFAULT '',
			notes         TEXT NOT NULL DEFAULT '',
			reminder_date TIMESTAMPTZ,
			prey          TEXT NOT NULL DEFAULT '',
			outcome       TEXT NOT NULL DEFAULT '',
			amount        INTEGER,
			attachments   JSONB NOT NULL DEFAULT '[]',
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_owner_date ON entries (owner_user_id, date DESC)`,
		`CREATE TABLE IF NOT EXISTS health_entries (
			id             TEXT PRIMARY KEY,
			owner_user_id  TEXT NOT NULL,
			specimen       TEXT NOT NULL DEFAULT '',
			species        TEXT NOT NULL DEFAULT '',
			date           TIMESTAMPTZ NOT NULL,
			enclosure_size TEXT NOT NULL DEFAULT '',
			temperature    DOUBLE PRECISION,
			humidity       DOUBLE PRECISION,
			condition      TEXT NOT NULL DEFAULT '',
			behavior       TEXT NOT NULL DEFAULT '',
			health_issues  TEXT NOT NULL DEFAULT '',
			treatment      TEXT NOT NULL DEFAULT '',
			follow_up_date TIMESTAMPTZ,
			attachments    JSONB NOT NULL DEFAULT '[]',
			created_at     TIMESTAMPTZ NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_health_owner_date ON health_entries (owner_user_id, date DESC)`,
		`CREATE TABLE IF NOT EXISTS breeding_entries (
			id             TEXT PRIMARY KEY,
			owner_user_id  TEXT NOT NULL,
			female         TEXT NOT NULL DEFAULT '',
			male           TEXT NOT NULL DEFAULT '',
			species        TEXT NOT NULL DEFAULT '',
			pairing_date   TIMESTAMPTZ NOT NULL,
			status         TEXT NOT NULL DEFAULT '',
			pairing_notes  TEXT NOT NULL DEFAULT '',
			egg_sac_date   TIMESTAMPTZ,
			egg_sac_status TEXT NOT NULL DEFAULT '',
			egg_sac_count  INTEGER,
			hatch_date     TIMESTAMPTZ,
			sling_count    INTEGER,
			follow_up_date TIMESTAMPTZ,
			attachments    JSONB NOT NULL DEFAULT '[]',
			created_at     TIMESTAMPTZ NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_breeding_owner_date ON breeding_entries (owner_user_id, pairing_date DESC)`,
		`CREATE TABLE IF NOT EXISTS research_stacks (
			id            TEXT PRIMARY KEY,
			owner_user_id TEXT NOT NULL,
			name          TEXT NOT NULL,
			species       TEXT NOT NULL DEFAULT '',
			notes         JSONB NOT NULL DEFAULT '[]',
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_research_owner ON research_stacks (owner_user_id, updated_at DESC)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
