package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jacmel/storefront-backend/pkg/config"
	"github.com/pressly/goose/v3"
)

// Dir is the directory inside the embedded filesystem holding the goose files.
const Dir = "migrations"

//go:embed migrations/*.sql
var embedded embed.FS

// FS exposes the embedded migrations.
func FS() fs.FS {
	return embedded
}

// Run executes a goose command against the embedded migrations.
func Run(ctx context.Context, db *sql.DB, driver string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if err := configure(driver); err != nil {
		return err
	}
	if err := goose.RunContext(ctx, command, db, Dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("db is required")
	}
	if err := configure(driver); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}

func configure(driver string) error {
	goose.SetBaseFS(embedded)
	if err := goose.SetDialect(dialectFor(driver)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

func dialectFor(driver string) string {
	if driver == config.DBDriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}
