package services

import (
	"context"
	"errors"

	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/logging"
)

var errNonPositiveID = errors.New("server returned a non-positive id")

// MarketService covers listings, orders and favorites. userID is the id of
// the signed-in account, or a non-positive value when signed out.
type MarketService interface {
	ListItems(ctx context.Context, userID int64, q client.ItemQuery) Result[*models.ItemPage]
	GetItem(ctx context.Context, userID, itemID int64) Result[*models.Item]
	CreateItem(ctx context.Context, userID int64, req models.CreateItemRequest) Result[int64]
	CreateOrder(ctx context.Context, userID, itemID int64) Result[int64]
	GetOrder(ctx context.Context, userID, orderID int64) Result[*models.Order]
	Favorite(ctx context.Context, userID, itemID int64) Result[struct{}]
	Unfavorite(ctx context.Context, userID, itemID int64) Result[struct{}]
}

type marketService struct {
	client client.Client
	log    logging.Logger
}

func NewMarketService(c client.Client, log logging.Logger) MarketService {
	if log == nil {
		log = logging.Discard()
	}
	return &marketService{client: c, log: log}
}

func (m *marketService) ListItems(ctx context.Context, userID int64, q client.ItemQuery) Result[*models.ItemPage] {
	return call(ctx, m.log, "list items", func(ctx context.Context) (*models.ItemPage, error) {
		q = q.WithDefaults()
		page, err := m.client.ListItems(ctx, q)
		if err != nil {
			return nil, err
		}
		if err := page.CheckPage(q.PageNo); err != nil {
			return nil, err
		}
		for i := range page.Records {
			markSeller(&page.Records[i], userID)
		}
		return page, nil
	})
}

func (m *marketService) GetItem(ctx context.Context, userID, itemID int64) Result[*models.Item] {
	return call(ctx, m.log, "get item", func(ctx context.Context) (*models.Item, error) {
		it, err := m.client.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		markSeller(it, userID)
		return it, nil
	})
}

func (m *marketService) CreateItem(ctx context.Context, userID int64, req models.CreateItemRequest) Result[int64] {
	return call(ctx, m.log, "create item", func(ctx context.Context) (int64, error) {
		if err := requireUser(userID); err != nil {
			return 0, err
		}
		if err := req.Validate(); err != nil {
			return 0, err
		}
		if req.Images == nil {
			req.Images = []int64{}
		}
		id, err := m.client.CreateItem(ctx, req)
		if err != nil {
			return 0, err
		}
		if id <= 0 {
			return 0, &client.DecodeError{Path: "/item/create", Err: errNonPositiveID}
		}
		return id, nil
	})
}

func (m *marketService) CreateOrder(ctx context.Context, userID, itemID int64) Result[int64] {
	return call(ctx, m.log, "create order", func(ctx context.Context) (int64, error) {
		if err := requireUser(userID); err != nil {
			return 0, err
		}
		id, err := m.client.CreateOrder(ctx, itemID)
		if err != nil {
			return 0, err
		}
		if id <= 0 {
			return 0, &client.DecodeError{Path: "/order/create", Err: errNonPositiveID}
		}
		return id, nil
	})
}

func (m *marketService) GetOrder(ctx context.Context, userID, orderID int64) Result[*models.Order] {
	return call(ctx, m.log, "get order", func(ctx context.Context) (*models.Order, error) {
		if err := requireUser(userID); err != nil {
			return nil, err
		}
		return m.client.GetOrder(ctx, orderID)
	})
}

func (m *marketService) Favorite(ctx context.Context, userID, itemID int64) Result[struct{}] {
	return call(ctx, m.log, "favorite", func(ctx context.Context) (struct{}, error) {
		if err := requireUser(userID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, m.client.FavoriteItem(ctx, itemID)
	})
}

func (m *marketService) Unfavorite(ctx context.Context, userID, itemID int64) Result[struct{}] {
	return call(ctx, m.log, "unfavorite", func(ctx context.Context) (struct{}, error) {
		if err := requireUser(userID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, m.client.UnfavoriteItem(ctx, itemID)
	})
}

// markSeller overrides the server's isSeller flag with what the local session
// says.
func markSeller(it *models.Item, userID int64) {
	if it == nil {
		return
	}
	it.IsSeller = userID > 0 && it.SellerID == userID
}
