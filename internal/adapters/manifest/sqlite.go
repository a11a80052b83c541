package manifest

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// schema contains the DDL of the manifest tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS manifests (
		platform         TEXT NOT NULL,
		release_name     TEXT NOT NULL DEFAULT '',
		dlc              TEXT NOT NULL DEFAULT '',
		settings_version TEXT NOT NULL,
		updated_at       TEXT NOT NULL,
		PRIMARY KEY (platform, release_name, dlc)
	)`,

	`CREATE TABLE IF NOT EXISTS manifest_entries (
		platform     TEXT NOT NULL,
		release_name TEXT NOT NULL DEFAULT '',
		dlc          TEXT NOT NULL DEFAULT '',
		seq          INTEGER NOT NULL,
		package      TEXT NOT NULL,
		hash         TEXT NOT NULL DEFAULT '',
		success      INTEGER NOT NULL,
		cooked_at    TEXT NOT NULL,
		PRIMARY KEY (platform, release_name, dlc, package)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_manifest_entries_key ON manifest_entries(platform, release_name, dlc, seq)`,
}

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements ports.ManifestStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and migrates it.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", dbPath)
	}
	// A single connection serializes writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "pragma", pragma)
		}
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, zerr.Wrap(err, "failed to migrate manifest database")
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get retrieves the manifest stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key domain.ManifestKey) (*domain.Manifest, error) {
	m := &domain.Manifest{
		Platform: key.Platform,
		Release:  key.Release,
		DLC:      key.DLC,
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT settings_version FROM manifests WHERE platform = ? AND release_name = ? AND dlc = ?`,
		key.Platform.String(), key.Release, key.DLC,
	).Scan(&m.SettingsVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT package, hash, success, cooked_at FROM manifest_entries
		 WHERE platform = ? AND release_name = ? AND dlc = ? ORDER BY seq`,
		key.Platform.String(), key.Release, key.DLC,
	)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	m.Entries = []domain.ManifestEntry{}
	for rows.Next() {
		var (
			pkg, hash, cookedAt string
			success             bool
		)
		if err := rows.Scan(&pkg, &hash, &success, &cookedAt); err != nil {
			return nil, zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error())
		}
		at, err := time.Parse(time.RFC3339Nano, cookedAt)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error()), "package", pkg)
		}
		m.Entries = append(m.Entries, domain.ManifestEntry{
			Package:  domain.NewPackageID(pkg),
			Hash:     hash,
			Success:  success,
			CookedAt: at,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}
	return m, nil
}

// Put stores the manifest under its own key, replacing any previous one.
func (s *SQLiteStore) Put(ctx context.Context, m *domain.Manifest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	key := m.Key()
	if err := deleteKey(ctx, tx, key); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO manifests (platform, release_name, dlc, settings_version, updated_at) VALUES (?, ?, ?, ?, ?)`,
		key.Platform.String(), key.Release, key.DLC, m.SettingsVersion, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO manifest_entries (platform, release_name, dlc, seq, package, hash, success, cooked_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	defer stmt.Close() //nolint:errcheck // Closed with the transaction

	for i, e := range m.Entries {
		if _, err := stmt.ExecContext(ctx,
			key.Platform.String(), key.Release, key.DLC, i,
			e.Package.String(), e.Hash, e.Success, e.CookedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "package", e.Package.String())
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

// Delete removes the manifest stored under key.
func (s *SQLiteStore) Delete(ctx context.Context, key domain.ManifestKey) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if err := deleteKey(ctx, tx, key); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

func deleteKey(ctx context.Context, tx *sql.Tx, key domain.ManifestKey) error {
	for _, table := range []string{"manifest_entries", "manifests"} {
		//nolint:gosec // Table names are constants
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM `+table+` WHERE platform = ? AND release_name = ? AND dlc = ?`,
			key.Platform.String(), key.Release, key.DLC,
		); err != nil {
			return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
		}
	}
	return nil
}
