// Package session persists the identity of the device user: the signed-in
// account id, the bearer token and the phone number used to sign in.
//
// A Store never reports a missing value as an error; Read substitutes the
// signed-out defaults instead. Writes are atomic with respect to reads, and
// concurrent writers resolve as last write wins.
package session

import (
	"context"
	"strings"
)

// SignedOutUserID marks a session without a resolved account.
const SignedOutUserID int64 = -1

type Session struct {
	UserID int64
	Token  string
	Phone  string
}

// Empty returns the signed-out session {-1, "", ""}.
func Empty() Session {
	return Session{UserID: SignedOutUserID}
}

// SignedIn reports whether the session holds a resolved account.
func (s Session) SignedIn() bool {
	return s.UserID > 0
}

// HasToken reports whether a non-blank token is present.
func (s Session) HasToken() bool {
	return strings.TrimSpace(s.Token) != ""
}

type Store interface {
	Read(ctx context.Context) (Session, error)
	WriteToken(ctx context.Context, token string) error
	WriteSession(ctx context.Context, userID int64, token, phone string) error
	Clear(ctx context.Context) error
}

// TokenSource exposes the stored token to the HTTP transport.
type TokenSource struct {
	Store Store
}

// tokenReader is implemented by stores that can fetch the token without
// reading the whole session.
type tokenReader interface {
	Token(ctx context.Context) (string, error)
}

func (t TokenSource) Token(ctx context.Context) (string, error) {
	if tr, ok := t.Store.(tokenReader); ok {
		return tr.Token(ctx)
	}
	s, err := t.Store.Read(ctx)
	if err != nil {
		return "", err
	}
	return s.Token, nil
}
