// Package migrations embeds the backend schema for each supported dialect
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/tamakara/booth/internal/dbx"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

func gooseDialect(d dbx.Dialect) (goose.Dialect, error) {
	switch d {
	case dbx.DialectSQLite:
		return goose.DialectSQLite3, nil
	case dbx.DialectPostgres:
		return goose.DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}

// Up applies every pending migration for dialect d.
func Up(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
	gd, err := gooseDialect(d)
	if err != nil {
		return err
	}
	sub, err := fs.Sub(files, string(d))
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", d, err)
	}

	provider, err := goose.NewProvider(gd, db, sub)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
