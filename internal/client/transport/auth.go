// Package transport contains the http.RoundTripper decorators the Booth API
// client is built from.
package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/logging"
)

// TokenSource yields the current bearer token; "" means none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Auth attaches "Authorization: Bearer <token>" to every request while a
// non-blank token is available. Without a token the request is forwarded
// exactly as received. Auth never fails a request by itself: a token lookup
// error is logged and handled as "no token".
type Auth struct {
	Base   http.RoundTripper
	Tokens TokenSource
	Logger logging.Logger
}

func (a *Auth) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := a.Tokens.Token(req.Context())
	if err != nil {
		if a.Logger != nil {
			a.Logger.Warn(req.Context(), "token lookup failed, sending request without it", "error", err)
		}
		token = ""
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return a.base().RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	authed := req.Clone(req.Context())
	authed.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	return a.base().RoundTrip(authed)
}

func (a *Auth) base() http.RoundTripper {
	if a.Base == nil {
		return http.DefaultTransport
	}
	return a.Base
}
