// Package favorites stores user favorites.
package favorites

import (
	"context"
	"fmt"

	"github.com/tamakara/booth/internal/dbx"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Add(ctx context.Context, userID, itemID int64) error {
	query := r.dialect.Rebind(
		`INSERT INTO favorites (user_id, item_id) VALUES (?, ?)
		 ON CONFLICT (user_id, item_id) DO NOTHING`)
	if _, err := r.db.ExecContext(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Remove(ctx context.Context, userID, itemID int64) error {
	query := r.dialect.Rebind(`DELETE FROM favorites WHERE user_id = ? AND item_id = ?`)
	if _, err := r.db.ExecContext(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
