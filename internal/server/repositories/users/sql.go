// Package users stores marketplace accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/dbx"
	"github.com/tamakara/booth/internal/server/models"
)

const selectUser = `SELECT id, phone, username, password_hash, balance, avatar_url, created_at FROM users`

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := r.dialect.Rebind(
		`INSERT INTO users (phone, username, password_hash, balance, avatar_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		user.Phone, user.Username, user.PasswordHash, user.Balance.String(), user.AvatarURL,
		dbx.FormatTime(user.CreatedAt)).Scan(&user.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE phone = ?`, phone)
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = ?`, id)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		u                   models.User
		username, avatarURL sql.NullString
		createdAt           string
	)

	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), arg).
		Scan(&u.ID, &u.Phone, &username, &u.PasswordHash, &u.Balance, &avatarURL, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if username.Valid {
		u.Username = &username.String
	}
	if avatarURL.Valid {
		u.AvatarURL = &avatarURL.String
	}
	if u.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("user %d created_at: %w", u.ID, err)
	}
	return &u, nil
}
