package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tamakara/booth/internal/client/services"
	"github.com/tamakara/booth/internal/client/viewstate"
)

// Root greets the user, restores the stored session and runs the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Booth (type 'help' for commands)")

	a.refreshSession(ctx)
	if a.isLoggedIn() {
		printlnFn(fmt.Sprintf("Signed in as %s", a.sess.Phone))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// progressEvery is how often runOp reports that a call is still running.
var progressEvery = 2 * time.Second

// runOp drives one facade call through a view-state holder and prints the
// outcome. It returns ErrFailed when the call failed.
func runOp[T any](ctx context.Context, a *App, op func(ctx context.Context) services.Result[T], show func(T)) error {
	h := viewstate.NewHolder[T]()
	h.OnChange(func(s viewstate.State) {
		if _, ok := s.(viewstate.Loading); ok {
			printlnFn("...")
		}
	})

	var cause error
	done := h.Launch(ctx, func(ctx context.Context) services.Result[T] {
		res := op(ctx)
		cause = res.Err()
		return res
	})

	tick := time.NewTicker(progressEvery)
	defer tick.Stop()

	var st viewstate.State
wait:
	for {
		select {
		case st = <-done:
			break wait
		case <-tick.C:
			printlnFn("... still working")
		}
	}
	a.trackMode(cause)

	switch st := st.(type) {
	case viewstate.Success[T]:
		show(st.Payload)
		return nil
	case viewstate.Error:
		printlnFn("Error:", st.Message)
		return fmt.Errorf("%w: %s", ErrFailed, st.Message)
	}
	return nil
}

// idArg parses the single positional id argument of a command.
func idArg(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s (id must be a positive number)", errUsage, usage)
	}
	return id, nil
}

// pageArg parses an optional page number. Absent means page 1.
func pageArg(args []string, usage string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("%w: %s", errUsage, usage)
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page <= 0 {
		return 0, fmt.Errorf("%w: %s (page must be a positive number)", errUsage, usage)
	}
	return page, nil
}

var errNotSignedIn = errors.New("sign in first (use 'login')")
