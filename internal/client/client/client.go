package client

import (
	"context"

	"github.com/tamakara/booth/internal/client/models"
)

const (
	DefaultPageNo   = 1
	DefaultPageSize = 20
)

// ItemQuery selects a page of listings. Zero values take the defaults:
// any seller, state ON_SALE, page 1, 20 per page.
type ItemQuery struct {
	SellerID  int64
	ItemState string
	PageNo    int
	PageSize  int
}

// WithDefaults returns q with every unset field filled in.
func (q ItemQuery) WithDefaults() ItemQuery {
	if q.ItemState == "" {
		q.ItemState = models.ItemStateOnSaleFilter
	}
	if q.PageNo <= 0 {
		q.PageNo = DefaultPageNo
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	return q
}

type Client interface {
	// Register creates an account and returns the new user id as sent by the server.
	Register(ctx context.Context, phone, password string) (string, error)
	// Login returns the bearer token for the account.
	Login(ctx context.Context, phone, password string) (string, error)
	// GetUser returns the profile of sellerID, or of the caller when sellerID is 0.
	GetUser(ctx context.Context, sellerID int64) (*models.User, error)
	ListItems(ctx context.Context, q ItemQuery) (*models.ItemPage, error)
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (int64, error)
	CreateOrder(ctx context.Context, itemID int64) (int64, error)
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	FavoriteItem(ctx context.Context, itemID int64) error
	UnfavoriteItem(ctx context.Context, itemID int64) error
}
