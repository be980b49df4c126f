package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// ErrFailed is returned by a command whose remote call failed. Only such
// commands are remembered for "retry".
var ErrFailed = errors.New("operation failed")

var errUsage = errors.New("usage")

// execIface is the command surface the REPL drives. App implements it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	User(ctx context.Context, args []string) error
	Items(ctx context.Context, args []string) error
	Mine(ctx context.Context, args []string) error
	Item(ctx context.Context, args []string) error
	Publish(ctx context.Context) error
	Buy(ctx context.Context, args []string) error
	Order(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Unfav(ctx context.Context, args []string) error
}

// replayable is a failed command that already collected its input. retry
// runs replay instead of prompting again.
type replayable struct {
	err    error
	replay func(ctx context.Context) error
}

func (r *replayable) Error() string { return r.err.Error() }
func (r *replayable) Unwrap() error { return r.err }

// withReplay attaches replay to err when err is a remote failure.
func withReplay(err error, replay func(ctx context.Context) error) error {
	if !errors.Is(err, ErrFailed) {
		return err
	}
	return &replayable{err: err, replay: replay}
}

type invocation struct {
	cmd    string
	args   []string
	replay func(ctx context.Context) error
}

func (inv *invocation) run(ctx context.Context, a execIface) (bool, error) {
	if inv.replay != nil {
		return false, inv.replay(ctx)
	}
	return dispatch(ctx, a, inv.cmd, inv.args)
}

// runREPL reads commands from reader until EOF or "exit". "retry" repeats
// the last command that failed remotely, with the same arguments and the
// same prompted input. Commands that prompt for input read from the same
// reader.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	var lastFailed *invocation

	for {
		status := statusFn()
		if status != "" {
			status = " " + status
		}
		printlnFn(fmt.Sprintf("booth%s> ", status))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		inv := &invocation{cmd: cmd, args: args}
		retrying := cmd == "retry"
		if retrying {
			if lastFailed == nil {
				printlnFn("Nothing to retry")
				continue
			}
			inv = lastFailed
			printlnFn("Retrying:", strings.TrimSpace(inv.cmd+" "+strings.Join(inv.args, " ")))
		}

		quit, err := inv.run(ctx, a)
		if quit {
			return
		}
		switch {
		case errors.Is(err, ErrFailed):
			var r *replayable
			if errors.As(err, &r) {
				inv = &invocation{cmd: inv.cmd, args: inv.args, replay: r.replay}
			}
			lastFailed = inv
		case errors.Is(err, errUsage):
			printlnFn(err.Error())
		case err != nil:
			printlnFn("Error:", err.Error())
		case retrying:
			lastFailed = nil
		}

		if readErr != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: items [page], mine [page], item <id>, publish, buy <itemId>, order <id>, fav <itemId>, unfav <itemId>, whoami, user <id>, logout, retry, exit")
		} else {
			printlnFn("Available commands: register, login, items [page], item <id>, user <id>, retry, exit")
		}
		return false, nil

	case "register":
		return false, a.Register(ctx)
	case "login":
		return false, a.Login(ctx)
	case "logout":
		return false, a.Logout(ctx)
	case "whoami":
		return false, a.WhoAmI(ctx)
	case "user":
		return false, a.User(ctx, args)
	case "l", "items":
		return false, a.Items(ctx, args)
	case "mine":
		return false, a.Mine(ctx, args)
	case "item", "show":
		return false, a.Item(ctx, args)
	case "publish":
		return false, a.Publish(ctx)
	case "buy":
		return false, a.Buy(ctx, args)
	case "order":
		return false, a.Order(ctx, args)
	case "fav":
		return false, a.Fav(ctx, args)
	case "unfav":
		return false, a.Unfav(ctx, args)

	case "exit", "quit":
		printlnFn("Bye!")
		return true, nil

	default:
		printlnFn("Unknown command:", cmd)
		return false, nil
	}
}
