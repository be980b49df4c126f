// Package viewstate tracks the progress of one user action:
// Idle, then Loading, then Success or Error.
package viewstate

import (
	"context"
	"sync"

	"github.com/tamakara/booth/internal/client/services"
)

// State is one of Idle, Loading, Success[T] or Error.
type State interface {
	isState()
}

type Idle struct{}

type Loading struct{}

type Success[T any] struct {
	Payload T
}

type Error struct {
	Message string
}

func (Idle) isState()       {}
func (Loading) isState()    {}
func (Success[T]) isState() {}
func (Error) isState()      {}

// Holder keeps the state of a single use case. The newest completed
// operation wins; older completions arriving later overwrite it.
type Holder[T any] struct {
	mu       sync.RWMutex
	state    State
	onChange func(State)
}

func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{state: Idle{}}
}

// OnChange registers fn to observe every transition. fn runs on the goroutine
// that caused the transition.
func (h *Holder[T]) OnChange(fn func(State)) {
	h.mu.Lock()
	h.onChange = fn
	h.mu.Unlock()
}

func (h *Holder[T]) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.state == nil {
		return Idle{}
	}
	return h.state
}

func (h *Holder[T]) Reset() {
	h.set(Idle{})
}

// Run moves to Loading, runs op and records its outcome.
func (h *Holder[T]) Run(ctx context.Context, op func(ctx context.Context) services.Result[T]) State {
	return <-h.Launch(ctx, op)
}

func (h *Holder[T]) finish(res services.Result[T]) State {
	var next State
	if v, ok := res.Get(); ok {
		next = Success[T]{Payload: v}
	} else {
		next = Error{Message: res.Message()}
	}
	h.set(next)
	return next
}

// Launch moves to Loading and runs op on a new goroutine. The returned
// channel yields the recorded outcome once and is then closed.
func (h *Holder[T]) Launch(ctx context.Context, op func(ctx context.Context) services.Result[T]) <-chan State {
	done := make(chan State, 1)
	h.set(Loading{})
	go func() {
		defer close(done)
		done <- h.finish(op(ctx))
	}()
	return done
}

func (h *Holder[T]) set(s State) {
	h.mu.Lock()
	h.state = s
	fn := h.onChange
	h.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}
