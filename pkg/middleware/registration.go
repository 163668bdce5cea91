package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
)

// DefaultPublicPaths are served without an API key.
var DefaultPublicPaths = []string{"/health", "/metrics", "/swagger/"}

// Config holds configuration for middlewares
type Config struct {
	ServiceName     string
	EnableLogging   bool
	EnableTracing   bool
	EnableCORS      bool
	EnableRecovery  bool
	EnableTimeout   bool
	TimeoutDuration time.Duration
	CORSOptions     cors.Options
	APIKey          string
	PublicPaths     []string
	Metrics         *HTTPMetrics
}

// DefaultConfig returns the middleware configuration both services run with.
func DefaultConfig(serviceName, apiKey string, metrics *HTTPMetrics) *Config {
	return &Config{
		ServiceName:     serviceName,
		EnableLogging:   true,
		EnableTracing:   true,
		EnableCORS:      true,
		EnableRecovery:  true,
		EnableTimeout:   true,
		TimeoutDuration: 30 * time.Second,
		CORSOptions: cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Accept", "Authorization", "X-API-Key", "X-Request-ID"},
			ExposedHeaders: []string{"Location", "X-Request-ID"},
		},
		APIKey:      apiKey,
		PublicPaths: DefaultPublicPaths,
		Metrics:     metrics,
	}
}

// Register installs the configured middlewares on router. Order matters:
// recovery wraps everything, authentication runs last so rejected calls
// are still logged, traced and counted.
func Register(router *mux.Router, config *Config) {
	logger.Logger.Info().
		Str("service", config.ServiceName).
		Bool("logging", config.EnableLogging).
		Bool("tracing", config.EnableTracing).
		Bool("recovery", config.EnableRecovery).
		Bool("timeout", config.EnableTimeout).
		Dur("timeout_duration", config.TimeoutDuration).
		Bool("metrics", config.Metrics != nil).
		Msg("Registering middlewares")

	if config.EnableRecovery {
		router.Use(Recovery())
	}

	if config.EnableTimeout && config.TimeoutDuration > 0 {
		router.Use(Timeout(config.TimeoutDuration))
	}

	router.Use(RequestID())

	if config.EnableTracing {
		router.Use(Tracing(config.ServiceName))
	}

	if config.EnableLogging {
		router.Use(Logging)
	}

	router.Use(SecurityHeaders())

	if config.Metrics != nil {
		router.Use(config.Metrics.Middleware)
	}

	router.Use(APIKey(config.APIKey, config.PublicPaths))
}

// CORS wraps the whole router; preflight requests never reach a route.
func CORS(config *Config) func(http.Handler) http.Handler {
	if !config.EnableCORS {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(config.CORSOptions)
	return c.Handler
}

// Recovery turns a panic into a JSON:API 500 response.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error(r.Context()).
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered")

					document.WriteErrors(w, http.StatusInternalServerError,
						document.NewError(http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

const timeoutBody = `{"errors":[{"status":"503","title":"Service Unavailable","detail":"Request timeout"}]}`

// Timeout bounds the handler run time. The timeout answer is a JSON:API
// error document.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			th.ServeHTTP(&timeoutWriter{ResponseWriter: w}, r)
		})
	}
}

// timeoutWriter labels a 503 without a content type, which is how
// http.TimeoutHandler writes its timeout body.
type timeoutWriter struct {
	http.ResponseWriter
}

func (w *timeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", document.MediaType)
	}
	w.ResponseWriter.WriteHeader(code)
}

// SecurityHeaders adds the usual hardening headers. The swagger UI needs inline
// scripts, so it is exempt from the content security policy.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if !hasPrefix(r.URL.Path, []string{"/swagger/"}) {
				h.Set("Content-Security-Policy", "default-src 'self'")
			}

			next.ServeHTTP(w, r)
		})
	}
}
