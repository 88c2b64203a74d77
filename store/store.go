// SPDX-License-Identifier: MIT

// Package store persists skies and stars in SQLite (pure-Go modernc driver).
// It implements sky.Repository.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/armaan-choudhary/zola/sky"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// newID mints star IDs.
var newID = func() string { return uuid.NewString() }

// pragmas are applied on every pooled connection through the DSN.
const pragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"

// Store is a SQLite-backed sky.Repository.
type Store struct {
	db *sql.DB
}

var _ sky.Repository = (*Store)(nil)

// Open opens (or creates) the database at path and runs migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := ":memory:?" + pragmas
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("store: create data dir: %w", err)
		}
		dsn = path + "?" + pragmas
	}

	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if path == ":memory:" {
		// Every connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SchemaVersion reports the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	return v, err
}

func (s *Store) migrate() error {
	version := 0
	// Missing table on a fresh file reads as version 0.
	_ = s.db.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS skies (
				slug         TEXT PRIMARY KEY,
				creator_name TEXT NOT NULL,
				created_at   INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS stars (
				id          TEXT PRIMARY KEY,
				sky_slug    TEXT NOT NULL REFERENCES skies(slug) ON DELETE CASCADE,
				message     TEXT NOT NULL,
				sender_name TEXT NOT NULL DEFAULT '',
				emoji       TEXT NOT NULL,
				pos_x       REAL NOT NULL,
				pos_y       REAL NOT NULL,
				style       TEXT NOT NULL,
				shape       TEXT NOT NULL,
				created_at  INTEGER NOT NULL
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	if version < 2 {
		_, err := s.db.Exec(`
			CREATE INDEX IF NOT EXISTS idx_stars_sky_created ON stars(sky_slug, created_at, id);

			INSERT OR IGNORE INTO schema_version (version) VALUES (2);
		`)
		if err != nil {
			return fmt.Errorf("migration v2: %w", err)
		}
	}

	return nil
}

// CreateSky inserts a new sky. A duplicate slug reports sky.ErrSlugTaken.
func (s *Store) CreateSky(ctx context.Context, sk sky.Sky) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO skies (slug, creator_name, created_at) VALUES (?, ?, ?)",
		sk.Slug, sk.CreatorName, sk.CreatedAt.UnixNano(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("store: slug %q: %w", sk.Slug, sky.ErrSlugTaken)
	}
	if err != nil {
		return fmt.Errorf("store: create sky: %w", err)
	}

	return nil
}

// GetSky loads one sky. Unknown slugs report sky.ErrSkyNotFound.
func (s *Store) GetSky(ctx context.Context, slug string) (sky.Sky, error) {
	var (
		sk      sky.Sky
		created int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT slug, creator_name, created_at FROM skies WHERE slug = ?", slug,
	).Scan(&sk.Slug, &sk.CreatorName, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return sky.Sky{}, fmt.Errorf("store: slug %q: %w", slug, sky.ErrSkyNotFound)
	}
	if err != nil {
		return sky.Sky{}, fmt.Errorf("store: get sky: %w", err)
	}
	sk.CreatedAt = time.Unix(0, created).UTC()

	return sk, nil
}

// AddStar inserts st under a fresh UUID and returns the stored record.
func (s *Store) AddStar(ctx context.Context, st sky.Star) (sky.Star, error) {
	if st.ID == "" {
		st.ID = newID()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stars (id, sky_slug, message, sender_name, emoji, pos_x, pos_y, style, shape, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.ID, st.SkySlug, st.Message, st.SenderName, st.Emoji,
		st.PosX, st.PosY, st.Style, st.Shape, st.CreatedAt.UnixNano(),
	)
	if isForeignKeyViolation(err) {
		return sky.Star{}, fmt.Errorf("store: slug %q: %w", st.SkySlug, sky.ErrSkyNotFound)
	}
	if err != nil {
		return sky.Star{}, fmt.Errorf("store: add star: %w", err)
	}
	st.CreatedAt = time.Unix(0, st.CreatedAt.UnixNano()).UTC()

	return st, nil
}

// ListStars returns every star of slug ordered by creation time, then ID.
func (s *Store) ListStars(ctx context.Context, slug string) ([]sky.Star, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sky_slug, message, sender_name, emoji, pos_x, pos_y, style, shape, created_at
		FROM stars WHERE sky_slug = ?
		ORDER BY created_at ASC, id ASC`, slug)
	if err != nil {
		return nil, fmt.Errorf("store: list stars: %w", err)
	}
	defer rows.Close()

	stars := []sky.Star{}
	for rows.Next() {
		var (
			st      sky.Star
			created int64
		)
		if err := rows.Scan(&st.ID, &st.SkySlug, &st.Message, &st.SenderName, &st.Emoji,
			&st.PosX, &st.PosY, &st.Style, &st.Shape, &created); err != nil {
			return nil, fmt.Errorf("store: scan star: %w", err)
		}
		st.CreatedAt = time.Unix(0, created).UTC()
		stars = append(stars, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list stars: %w", err)
	}

	return stars, nil
}

// CountStars counts stars across all skies.
func (s *Store) CountStars(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stars").Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count stars: %w", err)
	}

	return n, nil
}

// isUniqueViolation checks if an error is a SQLite UNIQUE or PRIMARY KEY
// constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "PRIMARY KEY constraint failed"))
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
