package httpapi

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tamakara/booth/internal/server/models"
)

// Amount renders money as a bare JSON number with two decimals and accepts
// numbers or numeric strings.
type Amount struct {
	decimal.Decimal
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.Decimal.UnmarshalJSON(b)
}

type credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type userView struct {
	ID        int64   `json:"id"`
	Username  *string `json:"username,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Balance   Amount  `json:"balance"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// newUserView hides the phone number unless the viewer owns the account.
func newUserView(u *models.User, viewerID int64) userView {
	v := userView{
		ID:        u.ID,
		Username:  u.Username,
		Balance:   Amount{u.Balance},
		AvatarURL: u.AvatarURL,
	}
	if u.ID == viewerID {
		phone := u.Phone
		v.Phone = &phone
	}
	return v
}

type itemView struct {
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

func newItemView(it *models.Item, viewerID int64) itemView {
	images := it.Images
	if images == nil {
		images = []string{}
	}
	return itemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       Amount{it.Price},
		Postage:     Amount{it.Postage},
		Images:      images,
		SellerID:    it.SellerID,
		Favorites:   it.Favorites,
		State:       it.State,
		IsSeller:    viewerID > 0 && it.SellerID == viewerID,
	}
}

type pageView struct {
	Records []itemView `json:"records"`
	Total   int64      `json:"total"`
	Current int64      `json:"current"`
	Size    int64      `json:"size"`
}

type createItemRequest struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Price              Amount  `json:"price"`
	Postage            Amount  `json:"postage"`
	StateCode          int     `json:"stateCode"`
	DeliveryMethodCode int     `json:"deliveryMethodCode"`
	Images             []int64 `json:"images"`
}

type orderView struct {
	ID         int64  `json:"id"`
	ItemID     int64  `json:"itemId"`
	SellerID   int64  `json:"sellerId"`
	OrderState string `json:"orderState"`
	PayAmount  Amount `json:"payAmount"`
	CreatedAt  string `json:"createdAt"`
}

func newOrderView(o *models.Order) orderView {
	return orderView{
		ID:         o.ID,
		ItemID:     o.ItemID,
		SellerID:   o.SellerID,
		OrderState: o.State,
		PayAmount:  Amount{o.PayAmount},
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
