package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/dbx"
	"github.com/tamakara/booth/internal/server/models"
	"github.com/tamakara/booth/internal/server/repositories/repomanager"
)

// MarketService implements listings, purchases and favorites.
type MarketService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewMarketService(db *sql.DB, m repomanager.RepositoryManager) *MarketService {
	return &MarketService{db: db, repomanager: m, now: time.Now}
}

func (s *MarketService) ListItems(ctx context.Context, f models.ItemFilter) ([]models.Item, int64, error) {
	return s.repomanager.Items(s.db).List(ctx, f)
}

func (s *MarketService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	return s.repomanager.Items(s.db).GetByID(ctx, id)
}

// CreateItem publishes item on behalf of sellerID. State and delivery
// method default to on sale and 1.
func (s *MarketService) CreateItem(ctx context.Context, sellerID int64, item *models.Item) (*models.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	switch {
	case item.Name == "":
		return nil, fmt.Errorf("%w: item name is required", common.ErrInvalidArgument)
	case item.Price.IsNegative():
		return nil, fmt.Errorf("%w: price cannot be negative", common.ErrInvalidArgument)
	case item.Postage.IsNegative():
		return nil, fmt.Errorf("%w: postage cannot be negative", common.ErrInvalidArgument)
	}

	if item.State == 0 {
		item.State = models.ItemStateOnSale
	}
	if item.State != models.ItemStateOnSale && item.State != models.ItemStateOff {
		return nil, fmt.Errorf("%w: unsupported state %d", common.ErrInvalidArgument, item.State)
	}
	if item.DeliveryMethod == 0 {
		item.DeliveryMethod = 1
	}

	item.ID = 0
	item.SellerID = sellerID
	item.Favorites = 0
	item.CreatedAt = s.now()

	created, err := s.repomanager.Items(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return created, nil
}

// CreateOrder buys itemID for buyerID: the item flips to sold and an unpaid
// order for price plus postage is recorded, atomically.
func (s *MarketService) CreateOrder(ctx context.Context, buyerID, itemID int64) (*models.Order, error) {
	var order *models.Order

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		itemsRepo := s.repomanager.Items(tx)

		item, err := itemsRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item.SellerID == buyerID {
			return common.ErrOwnItem
		}
		if item.State != models.ItemStateOnSale {
			return common.ErrItemNotForSale
		}
		if err := itemsRepo.MarkSold(ctx, itemID); err != nil {
			return err
		}

		order, err = s.repomanager.Orders(tx).Create(ctx, &models.Order{
			ItemID:    item.ID,
			BuyerID:   buyerID,
			SellerID:  item.SellerID,
			State:     models.OrderStateUnpaid,
			PayAmount: item.Price.Add(item.Postage),
			CreatedAt: s.now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns the order when userID is its buyer or seller. Other
// callers get common.ErrNotFound.
func (s *MarketService) GetOrder(ctx context.Context, userID, orderID int64) (*models.Order, error) {
	o, err := s.repomanager.Orders(s.db).GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.BuyerID != userID && o.SellerID != userID {
		return nil, common.ErrNotFound
	}
	return o, nil
}

func (s *MarketService) Favorite(ctx context.Context, userID, itemID int64) error {
	if err := s.ensureItem(ctx, itemID); err != nil {
		return err
	}
	return s.repomanager.Favorites(s.db).Add(ctx, userID, itemID)
}

func (s *MarketService) Unfavorite(ctx context.Context, userID, itemID int64) error {
	if err := s.ensureItem(ctx, itemID); err != nil {
		return err
	}
	return s.repomanager.Favorites(s.db).Remove(ctx, userID, itemID)
}

func (s *MarketService) ensureItem(ctx context.Context, itemID int64) error {
	_, err := s.repomanager.Items(s.db).GetByID(ctx, itemID)
	if errors.Is(err, common.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("error loading item: %w", err)
	}
	return nil
}
