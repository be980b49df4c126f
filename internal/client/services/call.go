package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tamakara/booth/internal/client/client"
	"github.com/tamakara/booth/internal/client/models"
	"github.com/tamakara/booth/internal/logging"
)

var (
	ErrSignInRequired = errors.New("sign in required")
	ErrPanic          = errors.New("unexpected failure")
)

// call runs fn once and folds its outcome into a Result. A panic inside fn is
// reported as a failure.
func call[T any](ctx context.Context, log logging.Logger, op string, fn func(ctx context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("%w: %v", ErrPanic, p)
			log.Error(ctx, "operation panicked", "op", op, "panic", p)
			res = Failure[T](describe(op, err), err)
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		log.Warn(ctx, "operation failed", "op", op, "error", err)
		return Failure[T](describe(op, err), err)
	}
	return Success(v)
}

// describe turns err into a message fit for display.
func describe(op string, err error) string {
	var (
		statusErr *client.StatusError
		decodeErr *client.DecodeError
	)

	switch {
	case errors.Is(err, ErrSignInRequired):
		return op + ": sign in required"
	case errors.Is(err, context.Canceled):
		return op + ": cancelled"
	case errors.As(err, &statusErr):
		if statusErr.Code == http.StatusUnauthorized || statusErr.Code == http.StatusForbidden {
			return op + ": not authorized, please sign in again"
		}
		msg := fmt.Sprintf("%s: server returned %d %s", op, statusErr.Code, http.StatusText(statusErr.Code))
		if statusErr.Body != "" {
			msg += " (" + statusErr.Body + ")"
		}
		return msg
	case errors.Is(err, client.ErrUnavailable):
		return op + ": server unreachable, check your connection"
	case errors.As(err, &decodeErr), errors.Is(err, models.ErrMalformedPage):
		return op + ": malformed server response"
	case errors.Is(err, ErrPanic):
		return op + ": unexpected failure"
	}
	return fmt.Sprintf("%s: %v", op, err)
}

func requireUser(userID int64) error {
	if userID <= 0 {
		return ErrSignInRequired
	}
	return nil
}
