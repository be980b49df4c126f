// Package services is the facade between the terminal client and the remote
// API. Every operation makes a single attempt, caches nothing and returns a
// Result instead of an error.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/client/session"
	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/logging"
)

var errEmptyToken = errors.New("server returned an empty token")

// AuthService covers accounts and the local session.
//
// Login stores the token, then resolves the account behind it and stores the
// full session. Register leaves the session alone. SignOut clears it.
type AuthService interface {
	Register(ctx context.Context, phone, password string) Result[string]
	Login(ctx context.Context, phone, password string) Result[string]
	GetUser(ctx context.Context, userID int64) Result[*models.User]
	GetCurrentUser(ctx context.Context) Result[*models.User]
	Session(ctx context.Context) Result[session.Session]
	SignOut(ctx context.Context) Result[struct{}]
}

type authService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
}

func NewAuthService(c client.Client, store session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{client: c, store: store, log: log}
}

func (a *authService) Register(ctx context.Context, phone, password string) Result[string] {
	return call(ctx, a.log, "register", func(ctx context.Context) (string, error) {
		return a.client.Register(ctx, phone, password)
	})
}

func (a *authService) Login(ctx context.Context, phone, password string) Result[string] {
	return call(ctx, a.log, "login", func(ctx context.Context) (string, error) {
		token, err := a.client.Login(ctx, phone, password)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(token) == "" {
			return "", &client.DecodeError{Path: "/user/login", Err: errEmptyToken}
		}

		// The profile request below must already carry the new token.
		if err := a.store.WriteToken(ctx, token); err != nil {
			return "", fmt.Errorf("save token: %w", err)
		}

		userID, storedPhone := session.SignedOutUserID, phone
		u, err := a.client.GetUser(ctx, 0)
		switch {
		case err != nil:
			a.log.Warn(ctx, "could not resolve signed-in account", "error", err)
			userID = userIDFromToken(token)
		case u == nil || u.ID <= 0:
			a.log.Warn(ctx, "profile carries no account id")
			userID = userIDFromToken(token)
		default:
			userID = u.ID
			storedPhone = u.PhoneOr(phone)
		}

		if err := a.store.WriteSession(ctx, userID, token, storedPhone); err != nil {
			return "", fmt.Errorf("save session: %w", err)
		}
		a.log.Info(ctx, "signed in", "user_id", userID)
		return token, nil
	})
}

func (a *authService) GetUser(ctx context.Context, userID int64) Result[*models.User] {
	return call(ctx, a.log, "get user", func(ctx context.Context) (*models.User, error) {
		return a.client.GetUser(ctx, userID)
	})
}

func (a *authService) GetCurrentUser(ctx context.Context) Result[*models.User] {
	return call(ctx, a.log, "get current user", func(ctx context.Context) (*models.User, error) {
		return a.client.GetUser(ctx, 0)
	})
}

func (a *authService) Session(ctx context.Context) Result[session.Session] {
	return call(ctx, a.log, "read session", func(ctx context.Context) (session.Session, error) {
		return a.store.Read(ctx)
	})
}

func (a *authService) SignOut(ctx context.Context) Result[struct{}] {
	return call(ctx, a.log, "sign out", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.store.Clear(ctx)
	})
}

// userIDFromToken reads the account id claim without verifying the
// signature. It returns SignedOutUserID when token is not a JWT or carries no
// usable id.
func userIDFromToken(token string) int64 {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return session.SignedOutUserID
	}

	var id int64
	switch v := claims[common.UserIDClaim].(type) {
	case float64:
		id = int64(v)
	case json.Number:
		id, _ = v.Int64()
	case string:
		id, _ = strconv.ParseInt(v, 10, 64)
	}
	if id <= 0 {
		return session.SignedOutUserID
	}
	return id
}
