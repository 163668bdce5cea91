package middleware

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"

	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
)

const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	APIKeyPrefix        = "ApiKey "

	unauthorizedTitle = "Unauthorized"
	invalidKeyDetail  = "Invalid or missing API key"
)

// APIKey rejects requests that do not carry the expected key in X-API-Key or
// in "Authorization: ApiKey <key>". Paths starting with one of publicPaths pass.
func APIKey(expected string, publicPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasPrefix(r.URL.Path, publicPaths) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !validKey(extractAPIKey(r), expected) {
				logger.Warn(r.Context()).
					Str("ip", ClientIP(r)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Invalid API key")

				document.WriteErrors(w, http.StatusUnauthorized,
					document.NewError(http.StatusUnauthorized, unauthorizedTitle, invalidKeyDetail))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractAPIKey(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}

	auth := r.Header.Get(HeaderAuthorization)
	if strings.HasPrefix(auth, APIKeyPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(auth, APIKeyPrefix))
	}

	return ""
}

func validKey(provided, expected string) bool {
	if provided == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// ClientIP returns the first X-Forwarded-For hop, falling back to the peer address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
