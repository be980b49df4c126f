package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/client/services"
	"github.com/tamakara/booth/internal/client/session"
	"github.com/tamakara/booth/internal/logging"
)

type fakeAuth struct {
	store session.Store

	regPhone, regPass string
	regRes            services.Result[string]

	loginPhone, loginPass string
	loginUserID           int64
	loginErr              error

	user services.Result[*models.User]
}

func (f *fakeAuth) Register(_ context.Context, phone, password string) services.Result[string] {
	f.regPhone, f.regPass = phone, password
	return f.regRes
}

func (f *fakeAuth) Login(ctx context.Context, phone, password string) services.Result[string] {
	f.loginPhone, f.loginPass = phone, password
	if f.loginErr != nil {
		return services.Failure[string]("login: bad credentials", f.loginErr)
	}
	_ = f.store.WriteSession(ctx, f.loginUserID, "abc123", phone)
	return services.Success("abc123")
}

func (f *fakeAuth) GetUser(context.Context, int64) services.Result[*models.User] { return f.user }
func (f *fakeAuth) GetCurrentUser(context.Context) services.Result[*models.User] { return f.user }

func (f *fakeAuth) Session(ctx context.Context) services.Result[session.Session] {
	s, err := f.store.Read(ctx)
	if err != nil {
		return services.Failure[session.Session]("", err)
	}
	return services.Success(s)
}

func (f *fakeAuth) SignOut(ctx context.Context) services.Result[struct{}] {
	return services.Success(struct{}{})
}

type fakeMarket struct {
	calls   []string
	userIDs []int64
	lastQ   client.ItemQuery
	lastReq models.CreateItemRequest

	err error
	// failures makes that many CreateItem calls fail as unreachable.
	failures int
	delay    time.Duration
}

func (f *fakeMarket) rec(name string, userID int64) {
	f.calls = append(f.calls, name)
	f.userIDs = append(f.userIDs, userID)
}

func result[T any](f *fakeMarket, v T) services.Result[T] {
	time.Sleep(f.delay)
	if f.err != nil {
		return services.Failure[T]("op: "+f.err.Error(), f.err)
	}
	return services.Success(v)
}

func (f *fakeMarket) ListItems(_ context.Context, userID int64, q client.ItemQuery) services.Result[*models.ItemPage] {
	f.rec("ListItems", userID)
	f.lastQ = q
	return result(f, &models.ItemPage{
		Records: []models.Item{{ID: 1, Name: "Desk", Price: models.MustAmount("100"), SellerID: 5, IsSeller: userID == 5}},
		Total:   1, Current: int64(q.PageNo), Size: 20,
	})
}

func (f *fakeMarket) GetItem(_ context.Context, userID, itemID int64) services.Result[*models.Item] {
	f.rec("GetItem", userID)
	return result(f, &models.Item{ID: itemID, Name: "Desk", Description: "Wood desk", State: models.ItemStateOnSale})
}

func (f *fakeMarket) CreateItem(_ context.Context, userID int64, req models.CreateItemRequest) services.Result[int64] {
	f.rec("CreateItem", userID)
	f.lastReq = req
	if f.failures > 0 {
		f.failures--
		err := &client.TransportError{Method: "POST", Path: "/item/vo/item", Err: errors.New("refused")}
		return services.Failure[int64]("create item: server unreachable", err)
	}
	return result(f, int64(101))
}

func (f *fakeMarket) CreateOrder(_ context.Context, userID, _ int64) services.Result[int64] {
	f.rec("CreateOrder", userID)
	return result(f, int64(55))
}

func (f *fakeMarket) GetOrder(_ context.Context, userID, orderID int64) services.Result[*models.Order] {
	f.rec("GetOrder", userID)
	return result(f, &models.Order{ID: orderID, ItemID: 7, OrderState: "UNPAID"})
}

func (f *fakeMarket) Favorite(_ context.Context, userID, _ int64) services.Result[struct{}] {
	f.rec("Favorite", userID)
	return result(f, struct{}{})
}

func (f *fakeMarket) Unfavorite(_ context.Context, userID, _ int64) services.Result[struct{}] {
	f.rec("Unfavorite", userID)
	return result(f, struct{}{})
}

func newTestApp(t *testing.T, input string) (*App, *fakeAuth, *fakeMarket) {
	t.Helper()
	store := session.NewMemoryStore()
	fa := &fakeAuth{store: store, loginUserID: 5}
	fm := &fakeMarket{}
	a := &App{
		auth:   fa,
		market: fm,
		log:    logging.Discard(),
		reader: bufio.NewReader(strings.NewReader(input)),
	}
	a.refreshSession(context.Background())
	return a, fa, fm
}

func stubInputs(t *testing.T, phone string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return phone, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestLoginThenLogout(t *testing.T) {
	out := captureOutput(t)
	a, fa, _ := newTestApp(t, "")
	pw := []byte("secret")
	stubInputs(t, "13800000000", pw)

	require.False(t, a.isLoggedIn())
	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "13800000000", fa.loginPhone)
	assert.Equal(t, "secret", fa.loginPass)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, pw, "password must be wiped")

	require.True(t, a.isLoggedIn())
	assert.EqualValues(t, 5, a.userID())
	assert.Equal(t, "(13800000000 online)", a.getStatus())
	assert.Contains(t, out.String(), "Signed in as 13800000000")

	require.NoError(t, fa.store.Clear(context.Background()))
	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
}

func TestLogin_FailureReturnsErrFailed(t *testing.T) {
	out := captureOutput(t)
	a, fa, _ := newTestApp(t, "")
	fa.loginErr = &client.StatusError{Code: http.StatusUnauthorized}
	stubInputs(t, "139", []byte("bad"))

	err := a.Login(context.Background())
	require.ErrorIs(t, err, ErrFailed)
	require.False(t, a.isLoggedIn())
	require.Contains(t, out.String(), "Error: login: bad credentials")
}

func TestRegister_PrintsUserID(t *testing.T) {
	out := captureOutput(t)
	a, fa, _ := newTestApp(t, "")
	fa.regRes = services.Success("17")
	stubInputs(t, "139", []byte("pw"))

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, "139", fa.regPhone)
	require.Contains(t, out.String(), "user id 17")
	require.False(t, a.isLoggedIn())
}

func TestMarketCommands_PassSessionUser(t *testing.T) {
	out := captureOutput(t)
	a, fa, fm := newTestApp(t, "")
	require.NoError(t, fa.store.WriteSession(context.Background(), 5, "abc123", "139"))
	a.refreshSession(context.Background())
	ctx := context.Background()

	require.NoError(t, a.Items(ctx, []string{"2"}))
	require.Equal(t, client.ItemQuery{PageNo: 2}, fm.lastQ)
	require.NoError(t, a.Mine(ctx, nil))
	require.Equal(t, client.ItemQuery{SellerID: 5, PageNo: 1}, fm.lastQ)
	require.NoError(t, a.Item(ctx, []string{"7"}))
	require.NoError(t, a.Buy(ctx, []string{"7"}))
	require.NoError(t, a.Order(ctx, []string{"55"}))
	require.NoError(t, a.Fav(ctx, []string{"7"}))
	require.NoError(t, a.Unfav(ctx, []string{"7"}))

	require.Equal(t, []string{"ListItems", "ListItems", "GetItem", "CreateOrder", "GetOrder", "Favorite", "Unfavorite"}, fm.calls)
	for _, id := range fm.userIDs {
		require.EqualValues(t, 5, id)
	}
	s := out.String()
	require.Contains(t, s, "#1  Desk  100.00 (+0.00 postage)  [yours]")
	require.Contains(t, s, "Order 55 created")
	require.Contains(t, s, "Order 55: item 7")
	require.Contains(t, s, "Added item 7 to favorites")
}

func TestPublish_ReadsListing(t *testing.T) {
	out := captureOutput(t)
	a, fa, fm := newTestApp(t, "Desk\nWood desk\n\n100\n\n")
	require.NoError(t, fa.store.WriteSession(context.Background(), 5, "abc123", "139"))
	a.refreshSession(context.Background())

	require.NoError(t, a.Publish(context.Background()))
	require.Equal(t, "Desk", fm.lastReq.Name)
	require.Equal(t, "Wood desk", fm.lastReq.Description)
	require.True(t, fm.lastReq.Price.Equal(models.MustAmount("100")))
	require.True(t, fm.lastReq.Postage.IsZero())
	require.Equal(t, models.ItemStateOnSale, fm.lastReq.StateCode)
	require.Contains(t, out.String(), "Published item 101")
}

func TestPublish_RetryReusesListing(t *testing.T) {
	out := captureOutput(t)
	a, fa, fm := newTestApp(t, "publish\nDesk\nWood desk\n\n100\n\nretry\n")
	require.NoError(t, fa.store.WriteSession(context.Background(), 5, "abc123", "139"))
	a.refreshSession(context.Background())
	fm.failures = 1

	runREPL(context.Background(), a, a.getStatus, a.reader)

	require.Equal(t, []string{"CreateItem", "CreateItem"}, fm.calls)
	require.Equal(t, "Desk", fm.lastReq.Name)
	require.True(t, fm.lastReq.Price.Equal(models.MustAmount("100")))
	s := out.String()
	require.Contains(t, s, "Error: create item: server unreachable")
	require.Contains(t, s, "Retrying: publish")
	require.Contains(t, s, "Published item 101")
	require.NotContains(t, s, "Unknown command")
	require.Equal(t, ModeOnline, a.Mode)
}

func TestLogin_RetryAsksOnlyForPassword(t *testing.T) {
	captureOutput(t)
	a, fa, _ := newTestApp(t, "login\nretry\n")
	fa.loginErr = &client.StatusError{Code: http.StatusUnauthorized}

	var phones, passwords int
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		phones++
		return "139", nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		passwords++
		return []byte(fmt.Sprintf("pw%d", passwords)), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	runREPL(context.Background(), a, a.getStatus, a.reader)

	require.Equal(t, 1, phones)
	require.Equal(t, 2, passwords)
	require.Equal(t, "139", fa.loginPhone)
	require.Equal(t, "pw2", fa.loginPass)
}

func TestRunOp_ReportsSlowCalls(t *testing.T) {
	out := captureOutput(t)
	orig := progressEvery
	progressEvery = time.Millisecond
	t.Cleanup(func() { progressEvery = orig })

	a, _, fm := newTestApp(t, "")
	fm.delay = 50 * time.Millisecond

	require.NoError(t, a.Item(context.Background(), []string{"7"}))
	require.Contains(t, out.String(), "... still working")
	require.Contains(t, out.String(), "Wood desk")
}

func TestPublish_RequiresSignIn(t *testing.T) {
	captureOutput(t)
	a, _, fm := newTestApp(t, "")

	require.ErrorIs(t, a.Publish(context.Background()), errNotSignedIn)
	require.ErrorIs(t, a.Mine(context.Background(), nil), errNotSignedIn)
	require.ErrorIs(t, a.WhoAmI(context.Background()), errNotSignedIn)
	require.Empty(t, fm.calls)
}

func TestCommands_UsageErrors(t *testing.T) {
	captureOutput(t)
	a, _, fm := newTestApp(t, "")
	ctx := context.Background()

	for _, err := range []error{
		a.Item(ctx, nil),
		a.Item(ctx, []string{"x"}),
		a.Buy(ctx, []string{"-1"}),
		a.Items(ctx, []string{"0"}),
		a.Items(ctx, []string{"1", "2"}),
		a.User(ctx, nil),
	} {
		require.ErrorIs(t, err, errUsage)
	}
	require.Empty(t, fm.calls)
}

func TestRunOp_TracksConnectivity(t *testing.T) {
	out := captureOutput(t)
	a, _, fm := newTestApp(t, "")

	fm.err = &client.TransportError{Method: "GET", Path: "/item/vo/item/7", Err: errors.New("refused")}
	err := a.Item(context.Background(), []string{"7"})
	require.ErrorIs(t, err, ErrFailed)
	require.Equal(t, ModeOffline, a.Mode)
	require.Contains(t, out.String(), "...")

	fm.err = nil
	require.NoError(t, a.Item(context.Background(), []string{"7"}))
	require.Equal(t, ModeOnline, a.Mode)
	require.Contains(t, out.String(), "Wood desk")
}

func TestTrackMode(t *testing.T) {
	a := &App{log: logging.Discard()}

	a.trackMode(services.ErrSignInRequired)
	require.Equal(t, ModeUnknown, a.Mode)

	a.trackMode(&client.StatusError{Code: http.StatusNotFound})
	require.Equal(t, ModeOnline, a.Mode)

	a.trackMode(&client.StatusError{Code: http.StatusServiceUnavailable})
	require.Equal(t, ModeOffline, a.Mode)

	a.trackMode(nil)
	require.Equal(t, ModeOnline, a.Mode)
	require.Equal(t, "(online)", a.getStatus())
}
