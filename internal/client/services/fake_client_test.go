package services

import (
	"context"
	"sync"

	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
)

// fakeClient implements client.Client for facade tests.
type fakeClient struct {
	mu sync.Mutex

	RegisterRet string
	RegisterErr error

	LoginRet string
	LoginErr error

	UserRet *models.User
	UserErr error

	PageRet *models.ItemPage
	PageErr error

	ItemRet *models.Item
	ItemErr error

	CreateItemRet int64
	CreateItemErr error

	OrderIDRet int64
	OrderIDErr error

	OrderRet *models.Order
	OrderErr error

	FavErr   error
	PanicOn  string
	Calls    []string
	LastQ    client.ItemQuery
	LastReq  models.CreateItemRequest
	LastUser int64
	Favs     map[int64]bool
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, name)
	if f.PanicOn == name {
		panic("boom in " + name)
	}
}

func (f *fakeClient) Register(_ context.Context, _, _ string) (string, error) {
	f.record("Register")
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, _, _ string) (string, error) {
	f.record("Login")
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) GetUser(_ context.Context, sellerID int64) (*models.User, error) {
	f.record("GetUser")
	f.LastUser = sellerID
	return f.UserRet, f.UserErr
}

func (f *fakeClient) ListItems(_ context.Context, q client.ItemQuery) (*models.ItemPage, error) {
	f.record("ListItems")
	f.LastQ = q
	return f.PageRet, f.PageErr
}

func (f *fakeClient) GetItem(_ context.Context, _ int64) (*models.Item, error) {
	f.record("GetItem")
	return f.ItemRet, f.ItemErr
}

func (f *fakeClient) CreateItem(_ context.Context, req models.CreateItemRequest) (int64, error) {
	f.record("CreateItem")
	f.LastReq = req
	return f.CreateItemRet, f.CreateItemErr
}

func (f *fakeClient) CreateOrder(_ context.Context, _ int64) (int64, error) {
	f.record("CreateOrder")
	return f.OrderIDRet, f.OrderIDErr
}

func (f *fakeClient) GetOrder(_ context.Context, _ int64) (*models.Order, error) {
	f.record("GetOrder")
	return f.OrderRet, f.OrderErr
}

func (f *fakeClient) FavoriteItem(_ context.Context, itemID int64) error {
	f.record("FavoriteItem")
	if f.FavErr != nil {
		return f.FavErr
	}
	if f.Favs == nil {
		f.Favs = map[int64]bool{}
	}
	f.Favs[itemID] = true
	return nil
}

func (f *fakeClient) UnfavoriteItem(_ context.Context, itemID int64) error {
	f.record("UnfavoriteItem")
	if f.FavErr != nil {
		return f.FavErr
	}
	delete(f.Favs, itemID)
	return nil
}

var _ client.Client = (*fakeClient)(nil)
