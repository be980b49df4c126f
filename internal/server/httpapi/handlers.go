package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/logging"
	"github.com/tamakara/booth/internal/server/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// maxPageNo keeps (pageNo-1)*pageSize far from overflowing the offset.
	maxPageNo = 1_000_000
)

// itemStates maps the itemState query values to stored states; 0 means any.
var itemStates = map[string]int{
	"ON_SALE": models.ItemStateOnSale,
	"SOLD":    models.ItemStateSold,
	"OFF":     models.ItemStateOff,
	"ALL":     0,
}

type UserService interface {
	Register(ctx context.Context, phone, password string) (*models.User, error)
	Login(ctx context.Context, phone, password string) (string, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type MarketService interface {
	ListItems(ctx context.Context, f models.ItemFilter) ([]models.Item, int64, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	CreateItem(ctx context.Context, sellerID int64, item *models.Item) (*models.Item, error)
	CreateOrder(ctx context.Context, buyerID, itemID int64) (*models.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*models.Order, error)
	Favorite(ctx context.Context, userID, itemID int64) error
	Unfavorite(ctx context.Context, userID, itemID int64) error
}

type Handlers struct {
	users  UserService
	market MarketService
	log    logging.Logger
}

func NewHandlers(users UserService, market MarketService, log logging.Logger) *Handlers {
	return &Handlers{users: users, market: market, log: log}
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, h.log, err)
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.users.Register(r.Context(), req.Phone, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeID(w, u.ID)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	token, err := h.users.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeText(w, token)
}

// GetUser returns the profile named by sellerId, or the caller's own
// profile when sellerId is absent.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	viewer := UserID(r.Context())

	target := viewer
	if raw := r.URL.Query().Get("sellerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.fail(w, r, fmt.Errorf("%w: sellerId must be a positive integer", common.ErrInvalidArgument))
			return
		}
		target = id
	}
	if target <= 0 {
		h.fail(w, r, errSignInRequired)
		return
	}

	u, err := h.users.GetUser(r.Context(), target)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newUserView(u, viewer))
}

func (h *Handlers) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	intParam := func(name string, def int64) (int64, error) {
		raw := q.Get(name)
		if raw == "" {
			return def, nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("%w: %s must be a positive integer", common.ErrInvalidArgument, name)
		}
		return v, nil
	}

	sellerID, err := intParam("sellerId", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pageNo, err := intParam("pageNo", 1)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if pageNo > maxPageNo {
		h.fail(w, r, fmt.Errorf("%w: pageNo must not exceed %d", common.ErrInvalidArgument, maxPageNo))
		return
	}
	pageSize, err := intParam("pageSize", defaultPageSize)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	pageSize = min(pageSize, maxPageSize)

	stateName := q.Get("itemState")
	if stateName == "" {
		stateName = "ON_SALE"
	}
	state, ok := itemStates[stateName]
	if !ok {
		h.fail(w, r, fmt.Errorf("%w: unknown itemState %q", common.ErrInvalidArgument, stateName))
		return
	}

	records, total, err := h.market.ListItems(r.Context(), models.ItemFilter{
		SellerID: sellerID,
		State:    state,
		Limit:    int(pageSize),
		Offset:   int((pageNo - 1) * pageSize),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	viewer := UserID(r.Context())
	page := pageView{Records: make([]itemView, 0, len(records)), Total: total, Current: pageNo, Size: pageSize}
	for i := range records {
		page.Records = append(page.Records, newItemView(&records[i], viewer))
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	it, err := h.market.GetItem(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newItemView(it, UserID(r.Context())))
}

func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	images := make([]string, 0, len(req.Images))
	for _, id := range req.Images {
		if id <= 0 {
			h.fail(w, r, fmt.Errorf("%w: image ids must be positive", common.ErrInvalidArgument))
			return
		}
		images = append(images, fmt.Sprintf("/image/%d", id))
	}

	it, err := h.market.CreateItem(r.Context(), UserID(r.Context()), &models.Item{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price.Decimal,
		Postage:        req.Postage.Decimal,
		Images:         images,
		State:          req.StateCode,
		DeliveryMethod: req.DeliveryMethodCode,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeID(w, it.ID)
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	o, err := h.market.CreateOrder(r.Context(), UserID(r.Context()), itemID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeID(w, o.ID)
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	o, err := h.market.GetOrder(r.Context(), UserID(r.Context()), orderID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newOrderView(o))
}

func (h *Handlers) Favorite(w http.ResponseWriter, r *http.Request) {
	h.toggleFavorite(w, r, h.market.Favorite)
}

func (h *Handlers) Unfavorite(w http.ResponseWriter, r *http.Request) {
	h.toggleFavorite(w, r, h.market.Unfavorite)
}

func (h *Handlers) toggleFavorite(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, itemID int64) error) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := op(r.Context(), UserID(r.Context()), itemID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
