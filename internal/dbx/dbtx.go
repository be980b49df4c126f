// Package dbx holds the database glue shared by the client session store and
// the server repositories: the DBTX handle, WithTx, and the SQLite/Postgres
// dialect helpers.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX lets a repository run against a pool or inside a transaction without
// knowing which. *sql.DB, *sql.Conn and *sql.Tx all implement it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxBeginner opens transactions for WithTx.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn on a fresh transaction. The transaction commits only when fn
// returns nil; an error from fn is returned as is after rollback, and a panic
// in fn rolls back and keeps unwinding. Placing an order looks like:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if err := m.Items(tx).MarkSold(ctx, itemID); err != nil {
//	        return err
//	    }
//	    _, err := m.Orders(tx).Create(ctx, order)
//	    return err
//	})
func WithTx(ctx context.Context, db TxBeginner, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	return fn(ctx, tx)
}
