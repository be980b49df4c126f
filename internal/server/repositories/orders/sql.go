// Package orders stores purchases.
package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/dbx"
	"github.com/tamakara/booth/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	query := r.dialect.Rebind(
		`INSERT INTO orders (item_id, buyer_id, seller_id, state, pay_amount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		o.ItemID, o.BuyerID, o.SellerID, o.State, o.PayAmount.String(), dbx.FormatTime(o.CreatedAt),
	).Scan(&o.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return o, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	query := r.dialect.Rebind(
		`SELECT id, item_id, buyer_id, seller_id, state, pay_amount, created_at
		   FROM orders
		  WHERE id = ?`)

	var (
		o         models.Order
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.ItemID, &o.BuyerID, &o.SellerID, &o.State, &o.PayAmount, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if o.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("order %d created_at: %w", o.ID, err)
	}
	return &o, nil
}
