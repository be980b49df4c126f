// Package repomanager vends SQL repositories for one dialect and owns the
// database bootstrap: driver selection from the DSN and schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamakara/booth/internal/dbx"
	"github.com/tamakara/booth/internal/server/migrations"
	"github.com/tamakara/booth/internal/server/repositories/favorites"
	"github.com/tamakara/booth/internal/server/repositories/items"
	"github.com/tamakara/booth/internal/server/repositories/orders"
	"github.com/tamakara/booth/internal/server/repositories/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

func NewSQLRepositoryManager(dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect { return m.dialect }

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Items(db dbx.DBTX) items.Repository {
	return items.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Orders(db dbx.DBTX) orders.Repository {
	return orders.NewSQLRepository(db, m.dialect)
}

func (m *SQLRepositoryManager) Favorites(db dbx.DBTX) favorites.Repository {
	return favorites.NewSQLRepository(db, m.dialect)
}

// migrateUp is a seam for tests.
var migrateUp = migrations.Up

func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, m.dialect)
}

// Open connects to dsn, picking pgx for postgres:// URLs and SQLite
// otherwise, and migrates the schema. SQLite gets a single connection so
// writers never contend for the file lock.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	dialect := dbx.DialectFromDSN(dsn)

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == dbx.DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	m := NewSQLRepositoryManager(dialect)
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, m, nil
}
