package models

import (
	"errors"
	"fmt"
)

// Item state codes as stored on the server.
const (
	ItemStateOnSale = 1
	ItemStateSold   = 2
	ItemStateOff    = 3
)

// ItemStateOnSaleFilter is the itemState query value for listings on sale.
const ItemStateOnSaleFilter = "ON_SALE"

// DeliveryMethodDefault is the delivery method used when none is chosen.
const DeliveryMethodDefault = 1

type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       Amount   `json:"price"`
	Postage     Amount   `json:"postage"`
	Images      []string `json:"images"`
	SellerID    int64    `json:"sellerId"`
	Favorites   int64    `json:"favorites"`
	State       int      `json:"state"`
	IsSeller    bool     `json:"isSeller"`
}

// ItemPage is one page of a listing query.
type ItemPage struct {
	Records []Item `json:"records"`
	Total   int64  `json:"total"`
	Current int64  `json:"current"`
	Size    int64  `json:"size"`
}

var ErrMalformedPage = errors.New("malformed item page")

// CheckPage verifies the page against the request that produced it.
func (p ItemPage) CheckPage(pageNo int) error {
	if int64(len(p.Records)) > p.Size {
		return fmt.Errorf("%w: %d records exceed page size %d", ErrMalformedPage, len(p.Records), p.Size)
	}
	if p.Current != int64(pageNo) {
		return fmt.Errorf("%w: asked for page %d, got %d", ErrMalformedPage, pageNo, p.Current)
	}
	return nil
}

type CreateItemRequest struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Price              Amount  `json:"price"`
	Postage            Amount  `json:"postage"`
	StateCode          int     `json:"stateCode"`
	DeliveryMethodCode int     `json:"deliveryMethodCode"`
	Images             []int64 `json:"images"`
}

// NewCreateItemRequest fills in the default state, delivery method and an
// empty image list.
func NewCreateItemRequest(name, description string, price, postage Amount) CreateItemRequest {
	return CreateItemRequest{
		Name:               name,
		Description:        description,
		Price:              price,
		Postage:            postage,
		StateCode:          ItemStateOnSale,
		DeliveryMethodCode: DeliveryMethodDefault,
		Images:             []int64{},
	}
}

var (
	ErrNameRequired    = errors.New("item name is required")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativePostage = errors.New("postage cannot be negative")
)

// Validate checks the invariants the backend relies on.
func (r CreateItemRequest) Validate() error {
	var errs []error
	if r.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if r.Price.IsNegative() {
		errs = append(errs, ErrNegativePrice)
	}
	if r.Postage.IsNegative() {
		errs = append(errs, ErrNegativePostage)
	}
	return errors.Join(errs...)
}
