// Package middleware holds HTTP middleware that is configured from the
// environment rather than wired to application state.
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds the CORS policy for the API surface.
type CORSConfig struct {
	// AllowedOrigins is the origin whitelist. Empty means same-origin only:
	// every cross-origin request is rejected.
	AllowedOrigins []string

	// MaxAge is how long browsers may cache preflight results, in seconds.
	MaxAge int
}

// LoadCORSConfig reads the CORS policy from the environment.
// CORS_ALLOWED_ORIGINS is a comma-separated origin whitelist; CORS_MAX_AGE
// overrides the preflight cache lifetime (default 24h).
func LoadCORSConfig() CORSConfig {
	cfg := CORSConfig{MaxAge: 86400}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	if raw := os.Getenv("CORS_MAX_AGE"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.MaxAge = v
		}
	}
	return cfg
}

func (c CORSConfig) allowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// CORS handles cross-origin requests against the configured whitelist.
// Allowed origins are echoed back with credentials enabled, since the API
// authenticates with bearer tokens. Preflight requests from allowed origins
// short-circuit with 204; disallowed origins get no CORS headers at all and
// the browser enforces the rejection.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || !cfg.allowed(origin) {
				if r.Method == http.MethodOptions && origin != "" {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
				h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
