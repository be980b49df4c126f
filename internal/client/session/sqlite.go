package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/tamakara/booth/internal/client/migrations"
	"github.com/tamakara/booth/internal/client/repositories/metadata"

	_ "modernc.org/sqlite"
)

const (
	keyUserID = "user_id"
	keyToken  = "token"
	keyPhone  = "phone"
)

// SQLiteStore keeps the session in the local metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (or creates) the session database at dsn and brings its
// schema up to date. A single connection is kept open so that writes are
// serialized and ":memory:" databases behave as one database.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Read(ctx context.Context) (Session, error) {
	values, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return Empty(), fmt.Errorf("read session: %w", err)
	}

	out := Empty()
	if raw, ok := values[keyUserID]; ok {
		// an unparsable id is treated like a missing one
		if id, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
			out.UserID = id
		}
	}
	out.Token = string(values[keyToken])
	out.Phone = string(values[keyPhone])
	return out, nil
}

// Token reads only the bearer token row. It is what the transport asks for
// on every request.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	raw, _, err := metadata.NewSQLiteRepository(s.db).Get(ctx, keyToken)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(raw), nil
}

func (s *SQLiteStore) WriteToken(ctx context.Context, token string) error {
	if err := metadata.NewSQLiteRepository(s.db).Set(ctx, keyToken, []byte(token)); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) WriteSession(ctx context.Context, userID int64, token, phone string) error {
	err := metadata.NewSQLiteRepository(s.db).SetMany(ctx, map[string][]byte{
		keyUserID: []byte(strconv.FormatInt(userID, 10)),
		keyToken:  []byte(token),
		keyPhone:  []byte(phone),
	})
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
