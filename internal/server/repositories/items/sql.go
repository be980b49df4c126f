// Package items stores listings together with their favorite counts.
package items

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/dbx"
	"github.com/tamakara/booth/internal/server/models"
)

const selectItem = `SELECT i.id, i.seller_id, i.name, i.description, i.price, i.postage, i.images,
       i.state, i.delivery_method, i.created_at,
       (SELECT COUNT(*) FROM favorites f WHERE f.item_id = i.id) AS favorites
  FROM items i`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	images := item.Images
	if images == nil {
		images = []string{}
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	query := r.dialect.Rebind(
		`INSERT INTO items (seller_id, name, description, price, postage, images, state, delivery_method, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`)

	err = r.db.QueryRowContext(ctx, query,
		item.SellerID, item.Name, item.Description, item.Price.String(), item.Postage.String(),
		string(encoded), item.State, item.DeliveryMethod, dbx.FormatTime(item.CreatedAt),
	).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	item.Images = images
	return item, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectItem+` WHERE i.id = ?`), id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *SQLRepository) List(ctx context.Context, f models.ItemFilter) ([]models.Item, int64, error) {
	var (
		conds []string
		args  []any
	)
	if f.SellerID > 0 {
		conds = append(conds, "i.seller_id = ?")
		args = append(args, f.SellerID)
	}
	if f.State > 0 {
		conds = append(conds, "i.state = ?")
		args = append(args, f.State)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := r.dialect.Rebind(`SELECT COUNT(*) FROM items i` + where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	pageQuery := r.dialect.Rebind(selectItem + where + ` ORDER BY i.id DESC LIMIT ? OFFSET ?`)
	rows, err := r.db.QueryContext(ctx, pageQuery, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Item, 0, f.Limit)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return out, total, nil
}

func (r *SQLRepository) MarkSold(ctx context.Context, id int64) error {
	query := r.dialect.Rebind(`UPDATE items SET state = ? WHERE id = ? AND state = ?`)
	res, err := r.db.ExecContext(ctx, query, models.ItemStateSold, id, models.ItemStateOnSale)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrItemNotForSale
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	var (
		it        models.Item
		images    string
		createdAt string
	)
	err := s.Scan(&it.ID, &it.SellerID, &it.Name, &it.Description, &it.Price, &it.Postage, &images,
		&it.State, &it.DeliveryMethod, &createdAt, &it.Favorites)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal([]byte(images), &it.Images); err != nil {
		return nil, fmt.Errorf("item %d images: %w", it.ID, err)
	}
	if it.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("item %d created_at: %w", it.ID, err)
	}
	return &it, nil
}
