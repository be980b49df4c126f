package services

// Result is the outcome of a facade operation: either a value or a
// display-ready failure message.
type Result[T any] struct {
	value T
	msg   string
	err   error
	ok    bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure builds a failed result. An empty msg falls back to the text of err.
func Failure[T any](msg string, err error) Result[T] {
	if msg == "" && err != nil {
		msg = err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	return Result[T]{msg: msg, err: err}
}

func (r Result[T]) Ok() bool { return r.ok }

// Value returns the payload, or the zero value of T for a failure.
func (r Result[T]) Value() T { return r.value }

// Message is empty for a success.
func (r Result[T]) Message() string { return r.msg }

// Err is the underlying cause of a failure, for logging and errors.Is.
func (r Result[T]) Err() error { return r.err }

// Get unpacks the result in the usual Go shape.
func (r Result[T]) Get() (T, bool) { return r.value, r.ok }
