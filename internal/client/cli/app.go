package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/config"
	"github.com/tamakara/booth/internal/client/services"
	"github.com/tamakara/booth/internal/client/session"
	"github.com/tamakara/booth/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	market services.MarketService
	log    logging.Logger
	reader *bufio.Reader
	closer io.Closer

	sess session.Session
	Mode Mode
}

// NewApp opens the session database named in c and builds the API client
// and services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}

	store, err := session.OpenSQLite(ctx, c.SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	apiClient, err := client.New(client.Options{
		BaseURL:        c.ServerBaseURL,
		Tokens:         session.TokenSource{Store: store},
		Logger:         log,
		ConnectTimeout: c.ConnectTimeout,
		RequestTimeout: c.RequestTimeout,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config: c,
		auth:   services.NewAuthService(apiClient, store, log),
		market: services.NewMarketService(apiClient, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		closer: store,
	}, nil
}

// Run restores the stored session and blocks in the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sess.HasToken()
}

// userID is the signed-in account id, or session.SignedOutUserID.
func (a *App) userID() int64 {
	return a.sess.UserID
}

func (a *App) refreshSession(ctx context.Context) {
	res := a.auth.Session(ctx)
	if !res.Ok() {
		a.log.Warn(ctx, "could not read session", "error", res.Err())
		a.sess = session.Empty()
		return
	}
	a.sess = res.Value()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// trackMode updates the connectivity mode from the outcome of a call.
func (a *App) trackMode(err error) {
	switch {
	case err == nil:
		a.setMode(ModeOnline)
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
	case errors.Is(err, services.ErrSignInRequired):
	default:
		// The server answered, so it is reachable.
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			a.setMode(ModeOnline)
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if a.sess.Phone != "" {
		s = a.sess.Phone + " "
	}
	if a.Mode != ModeUnknown {
		s += string(a.Mode)
	}
	if s = strings.TrimSpace(s); s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
