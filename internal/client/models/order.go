package models

type Order struct {
	ID         int64  `json:"id"`
	ItemID     int64  `json:"itemId"`
	SellerID   int64  `json:"sellerId"`
	OrderState string `json:"orderState"`
	PayAmount  Amount `json:"payAmount"`
	CreatedAt  string `json:"createdAt"`
}
