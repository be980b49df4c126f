package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStateUnpaid = "UNPAID"

type Order struct {
	ID        int64
	ItemID    int64
	BuyerID   int64
	SellerID  int64
	State     string
	PayAmount decimal.Decimal
	CreatedAt time.Time
}
