package client

import "time"

// Config locates the product service.
type Config struct {
	URL string `mapstructure:"url"`
	// ResponseTimeout bounds a single attempt.
	ResponseTimeout time.Duration `mapstructure:"response-timeout"`
	// BlockTimeout bounds the HTTP exchange including reading the body.
	BlockTimeout time.Duration `mapstructure:"block-timeout"`
	APIKey       string        `mapstructure:"-"`
}

func DefaultConfig() Config {
	return Config{
		URL:             "http://localhost:8080",
		ResponseTimeout: 3 * time.Second,
		BlockTimeout:    5 * time.Second,
	}
}
