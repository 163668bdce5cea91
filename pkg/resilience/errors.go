package resilience

import (
	"context"
	"errors"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrTimeout     = errors.New("call timed out")
)

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as a definitive answer from the dependency: it is not
// retried and does not count against the circuit breaker.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

func unwrapPermanent(err error) error {
	var p *permanentError
	if errors.As(err, &p) {
		return p.err
	}
	return err
}

func retryable(err error) bool {
	switch {
	case IsPermanent(err),
		errors.Is(err, ErrCircuitOpen),
		errors.Is(err, ErrRateLimited),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}

// countsAsSuccess decides what the breaker records for a finished call.
func countsAsSuccess(err error) bool {
	return err == nil ||
		IsPermanent(err) ||
		errors.Is(err, context.Canceled)
}
