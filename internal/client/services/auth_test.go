package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/client/session"
)

func strPtr(s string) *string { return &s }

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestLogin_StoresTokenAndResolvedAccount(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	fc := &fakeClient{
		LoginRet: "abc123",
		UserRet:  &models.User{ID: 42, Phone: strPtr("13800000000")},
	}
	svc := NewAuthService(fc, store, nil)

	res := svc.Login(ctx, "13800000000", "secret")
	require.True(t, res.Ok())
	require.Equal(t, "abc123", res.Value())
	require.Empty(t, res.Message())
	require.Equal(t, []string{"Login", "GetUser"}, fc.Calls)
	require.EqualValues(t, 0, fc.LastUser)

	s, err := store.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, session.Session{UserID: 42, Token: "abc123", Phone: "13800000000"}, s)
}

func TestLogin_ProfileFailureFallsBackToTokenClaim(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	token := signedToken(t, jwt.MapClaims{"user_id": 7})
	fc := &fakeClient{LoginRet: token, UserErr: &client.StatusError{Code: http.StatusInternalServerError}}

	res := NewAuthService(fc, store, nil).Login(ctx, "139", "pw")
	require.True(t, res.Ok())

	s, _ := store.Read(ctx)
	require.EqualValues(t, 7, s.UserID)
	require.Equal(t, token, s.Token)
	require.Equal(t, "139", s.Phone)
}

func TestLogin_OpaqueTokenKeepsSignedOutID(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	fc := &fakeClient{LoginRet: "abc123", UserErr: errors.New("down")}

	res := NewAuthService(fc, store, nil).Login(ctx, "139", "pw")
	require.True(t, res.Ok())

	s, _ := store.Read(ctx)
	require.Equal(t, session.Session{UserID: session.SignedOutUserID, Token: "abc123", Phone: "139"}, s)
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	fc := &fakeClient{LoginErr: &client.StatusError{Method: "POST", Path: "/user/login", Code: http.StatusUnauthorized}}

	res := NewAuthService(fc, store, nil).Login(ctx, "139", "bad")
	require.False(t, res.Ok())
	require.NotEmpty(t, res.Message())
	require.ErrorIs(t, res.Err(), client.ErrUnauthorized)

	s, _ := store.Read(ctx)
	require.Equal(t, session.Empty(), s)
}

func TestLogin_EmptyTokenIsFailure(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	fc := &fakeClient{LoginRet: "  "}

	res := NewAuthService(fc, store, nil).Login(ctx, "139", "pw")
	require.False(t, res.Ok())
	require.Contains(t, res.Message(), "malformed")
	require.Equal(t, []string{"Login"}, fc.Calls)
}

func TestRegister_DoesNotTouchSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	fc := &fakeClient{RegisterRet: "17"}

	res := NewAuthService(fc, store, nil).Register(ctx, "139", "pw")
	require.True(t, res.Ok())
	require.Equal(t, "17", res.Value())

	s, _ := store.Read(ctx)
	require.Equal(t, session.Empty(), s)
}

func TestGetUserAndCurrentUser(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{UserRet: &models.User{ID: 9}}
	svc := NewAuthService(fc, session.NewMemoryStore(), nil)

	res := svc.GetUser(ctx, 9)
	require.True(t, res.Ok())
	require.EqualValues(t, 9, fc.LastUser)

	cur := svc.GetCurrentUser(ctx)
	require.True(t, cur.Ok())
	require.EqualValues(t, 0, fc.LastUser)

	fc.UserErr = &client.TransportError{Method: "GET", Path: "/user/vo/user", Err: errors.New("connection refused")}
	failed := svc.GetCurrentUser(ctx)
	require.False(t, failed.Ok())
	require.Nil(t, failed.Value())
	require.Contains(t, failed.Message(), "unreachable")
	require.ErrorIs(t, failed.Err(), client.ErrUnavailable)
}

func TestSessionAndSignOut(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.WriteSession(ctx, 42, "abc123", "139"))
	svc := NewAuthService(&fakeClient{}, store, nil)

	s := svc.Session(ctx)
	require.True(t, s.Ok())
	require.True(t, s.Value().SignedIn())

	require.True(t, svc.SignOut(ctx).Ok())
	require.Equal(t, session.Empty(), svc.Session(ctx).Value())
}

func TestUserIDFromToken(t *testing.T) {
	require.EqualValues(t, 42, userIDFromToken(signedToken(t, jwt.MapClaims{"user_id": 42})))
	require.EqualValues(t, 42, userIDFromToken(signedToken(t, jwt.MapClaims{"user_id": "42"})))
	require.Equal(t, session.SignedOutUserID, userIDFromToken(signedToken(t, jwt.MapClaims{"sub": "x"})))
	require.Equal(t, session.SignedOutUserID, userIDFromToken(signedToken(t, jwt.MapClaims{"user_id": 0})))
	require.Equal(t, session.SignedOutUserID, userIDFromToken("abc123"))
}

func TestLogin_IdlessProfileFallsBackToTokenClaim(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	token := signedToken(t, jwt.MapClaims{"user_id": 9})
	fc := &fakeClient{LoginRet: token, UserRet: &models.User{ID: 0}}

	res := NewAuthService(fc, store, nil).Login(ctx, "139", "pw")
	require.True(t, res.Ok())

	s, _ := store.Read(ctx)
	require.Equal(t, session.Session{UserID: 9, Token: token, Phone: "139"}, s)
}
