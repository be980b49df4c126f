package repomanager

import (
	"context"
	"database/sql"

	"github.com/tamakara/booth/internal/dbx"
	"github.com/tamakara/booth/internal/server/repositories/favorites"
	"github.com/tamakara/booth/internal/server/repositories/items"
	"github.com/tamakara/booth/internal/server/repositories/orders"
	"github.com/tamakara/booth/internal/server/repositories/users"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
	Orders(db dbx.DBTX) orders.Repository
	Favorites(db dbx.DBTX) favorites.Repository
}
