package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/session"
)

// junkBackend answers every route with a 200 and a body of the wrong shape.
func junkBackend(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_MalformedTokenLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()

	for _, body := range []string{"null", `{"token":"abc123"}`, `["abc123"]`} {
		srv := junkBackend(t, map[string]string{"/user/login": body})
		s := newStack(t, srv.URL)

		res := s.auth.Login(ctx, "13800000000", "secret")
		require.False(t, res.Ok(), body)
		require.Equal(t, "login: malformed server response", res.Message())
		var de *client.DecodeError
		require.ErrorAs(t, res.Err(), &de)

		sess, err := s.store.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, session.Empty(), sess, body)
	}
}

func TestReads_NullOrIdlessBodiesAreFailures(t *testing.T) {
	ctx := context.Background()
	srv := junkBackend(t, map[string]string{
		"/user/vo/user":     "null",
		"/item/vo/item/7":   "null",
		"/order/vo/order/3": "{}",
		"/item/vo/items":    "null",
	})
	s := newStack(t, srv.URL)

	user := s.auth.GetCurrentUser(ctx)
	require.False(t, user.Ok())
	require.Nil(t, user.Value())
	require.Equal(t, "get current user: malformed server response", user.Message())

	item := s.market.GetItem(ctx, 42, 7)
	require.False(t, item.Ok())
	require.Equal(t, "get item: malformed server response", item.Message())

	order := s.market.GetOrder(ctx, 5, 3)
	require.False(t, order.Ok())
	require.Equal(t, "get order: malformed server response", order.Message())

	page := s.market.ListItems(ctx, 0, client.ItemQuery{})
	require.False(t, page.Ok())
	require.Equal(t, "list items: malformed server response", page.Message())
}
