package middleware

import (
	"net"
	"net/http"
	"strings"

	h "gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/services"
)

// clientAddr extracts the client address for rate-limit bucketing: the first
// X-Forwarded-For hop when present (reverse proxy deployments), otherwise the
// remote address without the port.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns a wrapper that rejects requests over the limiter's
// per-client budget with 429.
func RateLimit(limiter *services.RateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientAddr(r)) {
				h.WriteError(w, http.StatusTooManyRequests, "too many requests, slow down")
				return
			}
			next(w, r)
		}
	}
}
