package resilience

import "time"

// Config describes one protected dependency. Zero values disable the
// corresponding layer, except FailureThreshold which defaults to 5.
type Config struct {
	Timeout        time.Duration        `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit-breaker"`
	Retry          RetryConfig          `mapstructure:"retry"`
	RateLimiter    RateLimiterConfig    `mapstructure:"rate-limiter"`
}

type CircuitBreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold uint32 `mapstructure:"failure-threshold"`
	// OpenTimeout is how long the circuit stays open before allowing trial calls.
	OpenTimeout time.Duration `mapstructure:"open-timeout"`
	// HalfOpenMaxRequests trial calls are allowed in half-open state; that many
	// consecutive successes close the circuit.
	HalfOpenMaxRequests uint32 `mapstructure:"half-open-max-requests"`
	// Interval clears the closed-state counts periodically. Zero never clears.
	Interval time.Duration `mapstructure:"interval"`
}

type RetryConfig struct {
	MaxAttempts     int           `mapstructure:"max-attempts"`
	InitialInterval time.Duration `mapstructure:"initial-interval"`
	MaxInterval     time.Duration `mapstructure:"max-interval"`
	Multiplier      float64       `mapstructure:"multiplier"`
}

type RateLimiterConfig struct {
	// Rate is permitted calls per second. Zero or less means unlimited.
	Rate  float64 `mapstructure:"rate"`
	Burst int     `mapstructure:"burst"`
}

func DefaultConfig() Config {
	return Config{
		Timeout: 3 * time.Second,
		CircuitBreaker: CircuitBreakerConfig{
			FailureThreshold:    5,
			OpenTimeout:         30 * time.Second,
			HalfOpenMaxRequests: 3,
			Interval:            60 * time.Second,
		},
		Retry: RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Multiplier:      2.0,
		},
		RateLimiter: RateLimiterConfig{
			Rate:  50,
			Burst: 50,
		},
	}
}
