package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/client/services"
	"github.com/tamakara/booth/internal/common"
)

// getSimpleText and getPassword point at the interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) readCredentials() (string, []byte, error) {
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", nil, err
	}
	return phone, password, nil
}

// askPassword returns a replay that prompts for the password again and
// calls fn with the phone collected the first time.
func askPassword(phone string, fn func(ctx context.Context, phone string, password []byte) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		return fn(ctx, phone, password)
	}
}

// Register creates an account. It does not sign in.
func (a *App) Register(ctx context.Context) error {
	phone, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	return a.register(ctx, phone, password)
}

func (a *App) register(ctx context.Context, phone string, password []byte) error {
	defer common.WipeByteArray(password)

	err := runOp(ctx, a, func(ctx context.Context) services.Result[string] {
		return a.auth.Register(ctx, phone, string(password))
	}, func(userID string) {
		printlnFn(fmt.Sprintf("Registered (user id %s). Use 'login' to sign in.", userID))
	})
	return withReplay(err, askPassword(phone, a.register))
}

// Login signs in and stores the session.
func (a *App) Login(ctx context.Context) error {
	phone, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	return a.login(ctx, phone, password)
}

func (a *App) login(ctx context.Context, phone string, password []byte) error {
	defer common.WipeByteArray(password)

	err := runOp(ctx, a, func(ctx context.Context) services.Result[string] {
		return a.auth.Login(ctx, phone, string(password))
	}, func(string) {})
	a.refreshSession(ctx)
	if err != nil {
		return withReplay(err, askPassword(phone, a.login))
	}

	printlnFn(fmt.Sprintf("Signed in as %s", a.sess.Phone))
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	err := runOp(ctx, a, a.auth.SignOut, func(struct{}) {
		printlnFn("Signed out")
	})
	a.refreshSession(ctx)
	return err
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotSignedIn
	}
	return runOp(ctx, a, a.auth.GetCurrentUser, func(u *models.User) {
		printlnFn(formatUser(u))
	})
}

func (a *App) User(ctx context.Context, args []string) error {
	id, err := idArg(args, "user <id>")
	if err != nil {
		return err
	}
	return runOp(ctx, a, func(ctx context.Context) services.Result[*models.User] {
		return a.auth.GetUser(ctx, id)
	}, func(u *models.User) {
		printlnFn(formatUser(u))
	})
}
