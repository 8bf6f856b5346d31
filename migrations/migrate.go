// Package migrations applies the embedded SQL schema files in name order.
// Applied files are tracked in a schema_migrations table so reruns are
// cheap no-ops; the server calls Up at startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed *.sql
var files embed.FS

const migrationsTable = "schema_migrations"

// Up applies all pending migrations.
func Up(db *sql.DB) error {
	if db == nil {
		return errors.New("db is required")
	}
	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("list embedded migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := isApplied(db, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		sqlBytes, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		if err := markApplied(db, name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
	}
	return nil
}

func ensureMigrationsTable(db *sql.DB) error {
	const q = `CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (
	    name       VARCHAR(255) PRIMARY KEY,
	    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}
	return nil
}

func isApplied(db *sql.DB, name string) (bool, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM `+migrationsTable+` WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", name, err)
	}
	return n > 0, nil
}

func markApplied(db *sql.DB, name string) error {
	_, err := db.Exec(`INSERT INTO `+migrationsTable+` (name) VALUES (?)`, name)
	return err
}
