// Package migrate applies the versioned Postgres schema kept in sql/.
//
// Every migration is a pair of files named <semver>.up.sql and
// <semver>.down.sql. Applied versions are recorded in schema_version and
// migrations run in ascending semver order, each in its own transaction.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/*.sql
var files embed.FS

// arbitrary key shared by every instance of the service
const advisoryLockKey = 7_340_021

const createSchemaVersion = `
CREATE TABLE IF NOT EXISTS schema_version (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migration is one schema step.
type Migration struct {
	Version *semver.Version
	Up      string
	Down    string
}

// Load reads all embedded migrations sorted by version.
func Load() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir: %w", err)
	}

	byVersion := make(map[string]*Migration)

	for _, entry := range entries {
		name := entry.Name()

		var (
			raw  string
			isUp bool
		)

		switch {
		case strings.HasSuffix(name, ".up.sql"):
			raw, isUp = strings.TrimSuffix(name, ".up.sql"), true
		case strings.HasSuffix(name, ".down.sql"):
			raw = strings.TrimSuffix(name, ".down.sql")
		default:
			return nil, fmt.Errorf("unexpected migration file %s", name)
		}

		version, err := semver.StrictNewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("semver.StrictNewVersion[%s]: %w", name, err)
		}

		content, err := fs.ReadFile(files, path.Join("sql", name))
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile[%s]: %w", name, err)
		}

		m, ok := byVersion[version.String()]
		if !ok {
			m = &Migration{Version: version}
			byVersion[version.String()] = m
		}

		if isUp {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
	}

	result := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migration %s has no up script", m.Version)
		}
		result = append(result, *m)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version.LessThan(result[j].Version)
	})

	return result, nil
}

// Apply runs every migration newer than the recorded schema version and
// returns the resulting version.
func Apply(ctx context.Context, pool *pgxpool.Pool) (*semver.Version, error) {
	migrations, err := Load()
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	if _, err := pool.Exec(ctx, createSchemaVersion); err != nil {
		return nil, fmt.Errorf("create schema_version: %w", err)
	}

	current, err := CurrentVersion(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("CurrentVersion: %w", err)
	}

	for _, m := range migrations {
		if !current.LessThan(m.Version) {
			continue
		}

		if err := applyOne(ctx, pool, m); err != nil {
			return nil, fmt.Errorf("apply[%s]: %w", m.Version, err)
		}

		current = m.Version
	}

	return current, nil
}

// Rollback reverts the most recent migration.
func Rollback(ctx context.Context, pool *pgxpool.Pool) (*semver.Version, error) {
	migrations, err := Load()
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	current, err := CurrentVersion(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("CurrentVersion: %w", err)
	}

	var target *Migration
	for i := range migrations {
		if migrations[i].Version.Equal(current) {
			target = &migrations[i]
			break
		}
	}

	if target == nil {
		return nil, fmt.Errorf("no migration to roll back from version %s", current)
	}

	if target.Down == "" {
		return nil, fmt.Errorf("migration %s has no down script", target.Version)
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", advisoryLockKey); err != nil {
			return fmt.Errorf("pg_advisory_xact_lock: %w", err)
		}

		if _, err := tx.Exec(ctx, target.Down); err != nil {
			return fmt.Errorf("down: %w", err)
		}

		if _, err := tx.Exec(ctx, "DELETE FROM schema_version WHERE version = $1", target.Version.String()); err != nil {
			return fmt.Errorf("delete schema_version: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rollback[%s]: %w", target.Version, err)
	}

	return CurrentVersion(ctx, pool)
}

// CurrentVersion returns the highest applied version, or 0.0.0 for an empty database.
func CurrentVersion(ctx context.Context, pool *pgxpool.Pool) (*semver.Version, error) {
	rows, err := pool.Query(ctx, "SELECT version FROM schema_version")
	if err != nil {
		return nil, fmt.Errorf("select schema_version: %w", err)
	}

	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	current := semver.MustParse("0.0.0")

	for _, raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid schema version %s: %w", raw, err)
		}

		if v.GreaterThan(current) {
			current = v
		}
	}

	return current, nil
}

// applyOne is a no-op when another instance applied m first.
func applyOne(ctx context.Context, pool *pgxpool.Pool, m Migration) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", advisoryLockKey); err != nil {
			return fmt.Errorf("pg_advisory_xact_lock: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_version WHERE version = $1)", m.Version.String()).Scan(&exists); err != nil {
			return fmt.Errorf("select schema_version: %w", err)
		}

		if exists {
			return nil
		}

		if _, err := tx.Exec(ctx, m.Up); err != nil {
			return fmt.Errorf("up: %w", err)
		}

		if _, err := tx.Exec(ctx, "INSERT INTO schema_version (version) VALUES ($1)", m.Version.String()); err != nil {
			return fmt.Errorf("insert schema_version: %w", err)
		}

		return nil
	})
}
