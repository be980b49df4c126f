package items

import (
	"context"

	"github.com/tamakara/booth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, int64, error)
	// MarkSold moves an on-sale item to sold. It fails with
	// common.ErrItemNotForSale when the item is not currently on sale.
	MarkSold(ctx context.Context, id int64) error
}
