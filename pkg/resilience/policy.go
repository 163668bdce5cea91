package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/link/inventory-platform/pkg/logger"
)

// Policy guards calls to one dependency. Layers apply outermost first:
// retry, rate limiter, circuit breaker, per-attempt timeout. A rate limited
// attempt never reaches the breaker and leaves its counts untouched.
type Policy struct {
	name    string
	cfg     Config
	breaker *gobreaker.CircuitBreaker[any]
	limiter *rate.Limiter
	metrics *Metrics
}

// NewPolicy builds a policy. metrics may be nil.
func NewPolicy(name string, cfg Config, metrics *Metrics) *Policy {
	threshold := cfg.CircuitBreaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	p := &Policy{
		name:    name,
		cfg:     cfg,
		metrics: metrics,
	}

	p.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.CircuitBreaker.HalfOpenMaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			event := logger.Logger.Info()
			if to == gobreaker.StateOpen {
				event = logger.Logger.Error()
			}
			event.
				Str("circuit", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			p.metrics.setState(name, to)
		},
		IsSuccessful: countsAsSuccess,
	})
	p.metrics.setState(name, gobreaker.StateClosed)

	if cfg.RateLimiter.Rate > 0 {
		burst := cfg.RateLimiter.Burst
		if burst <= 0 {
			burst = 1
		}
		p.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimiter.Rate), burst)
	}

	return p
}

func (p *Policy) Name() string { return p.name }

// State returns the breaker state as "closed", "half-open" or "open".
func (p *Policy) State() string { return p.breaker.State().String() }

// Stats snapshots the breaker counters.
func (p *Policy) Stats() BreakerStats {
	counts := p.breaker.Counts()
	return BreakerStats{
		Name:                 p.name,
		State:                p.breaker.State().String(),
		Requests:             counts.Requests,
		TotalSuccesses:       counts.TotalSuccesses,
		TotalFailures:        counts.TotalFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  counts.ConsecutiveFailures,
	}
}

// Execute runs fn under p. Errors wrapped with Permanent reach the caller
// unwrapped.
func Execute[T any](ctx context.Context, p *Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	op := func() error {
		if p.limiter != nil && !p.limiter.Allow() {
			p.metrics.observe(p.name, outcome(ErrRateLimited))
			return backoff.Permanent(ErrRateLimited)
		}

		v, err := p.breaker.Execute(func() (any, error) {
			return p.attempt(ctx, func(ctx context.Context) (any, error) {
				return fn(ctx)
			})
		})
		if err != nil {
			err = translate(err)
			p.metrics.observe(p.name, outcome(err))
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}

		p.metrics.observe(p.name, "success")
		if typed, ok := v.(T); ok {
			result = typed
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn(ctx).
			Err(err).
			Str("policy", p.name).
			Dur("backoff", wait).
			Msg("Retrying call")
	}

	if err := backoff.RetryNotify(op, p.newBackOff(ctx), notify); err != nil {
		var zero T
		return zero, unwrapPermanent(err)
	}

	return result, nil
}

func (p *Policy) attempt(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	v, err := fn(ctx)
	if err != nil && !IsPermanent(err) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return v, err
}

func (p *Policy) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	if p.cfg.Retry.InitialInterval > 0 {
		eb.InitialInterval = p.cfg.Retry.InitialInterval
	}
	if p.cfg.Retry.MaxInterval > 0 {
		eb.MaxInterval = p.cfg.Retry.MaxInterval
	}
	if p.cfg.Retry.Multiplier > 0 {
		eb.Multiplier = p.cfg.Retry.Multiplier
	}
	// Attempts, not elapsed time, bound the retries.
	eb.MaxElapsedTime = 0
	eb.Reset()

	retries := 0
	if p.cfg.Retry.MaxAttempts > 1 {
		retries = p.cfg.Retry.MaxAttempts - 1
	}

	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)
}

func translate(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return err
}

func outcome(err error) string {
	switch {
	case IsPermanent(err):
		return "permanent"
	case errors.Is(err, ErrCircuitOpen):
		return "rejected"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	default:
		return "failure"
	}
}
