package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item states as stored in items.state.
const (
	ItemStateOnSale = 1
	ItemStateSold   = 2
	ItemStateOff    = 3
)

type Item struct {
	ID             int64
	SellerID       int64
	Name           string
	Description    string
	Price          decimal.Decimal
	Postage        decimal.Decimal
	Images         []string
	State          int
	DeliveryMethod int
	Favorites      int64
	CreatedAt      time.Time
}

// ItemFilter selects a page of items. SellerID 0 means any seller and
// State 0 means any state.
type ItemFilter struct {
	SellerID int64
	State    int
	Limit    int
	Offset   int
}
