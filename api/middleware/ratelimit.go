package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint determines which rate limit to apply based on config
func (mw *Middleware) getRateLimitForEndpoint(path, method string) (int, time.Duration) {
	// OTP and token endpoints get the strictest limits
	if strings.HasPrefix(path, "/auth") {
		return mw.cfg.RateLimit.AuthLimit, mw.cfg.RateLimit.AuthWindow
	}

	if strings.HasPrefix(path, "/admin") {
		return mw.cfg.RateLimit.AdminLimit, mw.cfg.RateLimit.AdminWindow
	}

	// Catalog listings hit the database and cache hardest
	if method == http.MethodGet && (strings.HasPrefix(path, "/products") ||
		strings.HasPrefix(path, "/categories")) {
		return mw.cfg.RateLimit.ExpensiveLimit, mw.cfg.RateLimit.ExpensiveWindow
	}

	return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
}

// getClientIP extracts the real client IP from request headers
func (mw *Middleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}

	return ip
}

// normalizeEndpoint groups dynamic routes by their base path so cache keys
// don't explode, e.g. /products/123 -> /products/:id
func normalizeEndpoint(path string) string {
	path = strings.TrimSuffix(path, "/")

	for _, base := range []string{"/products/", "/cart/", "/orders/", "/wishlist/", "/reviews/"} {
		if strings.HasPrefix(path, base) && len(path) > len(base) {
			return base + ":id"
		}
	}

	return path
}

// RateLimitMiddleware implements sliding window rate limiting with minimal latency
func (mw *Middleware) RateLimitMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mw.cfg.RateLimit.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			// Health checks and the welcome route stay unthrottled
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == "/" {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := mw.getClientIP(r)
			limit, window := mw.getRateLimitForEndpoint(r.URL.Path, r.Method)
			endpoint := normalizeEndpoint(r.URL.Path)

			count, err := mw.cacheService.IncrementRateLimit(clientIP, endpoint, window)
			if err != nil {
				// Cache error - log and allow request (fail open)
				mw.logger.Warn("Rate limit cache error, allowing request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
				)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				mw.logger.Warn("Rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")

				http.Error(w, fmt.Sprintf(`{"message":"Rate limit exceeded. Please try again later.","data":{"limit":%d,"window":"%s","retry_after":%d}}`,
					limit, window.String(), int(window.Seconds())), http.StatusTooManyRequests)
				return
			}

			remaining := max(0, limit-count)
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

			if count > int(float64(limit)*0.8) {
				mw.logger.Debug("Rate limit warning",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
					gecho.Field("remaining", remaining),
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// StrictRateLimitMiddleware fails closed on cache errors. Used on the OTP
// request route where unmetered traffic means unmetered outbound email.
func (mw *Middleware) StrictRateLimitMiddleware(limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := mw.getClientIP(r)
			endpoint := normalizeEndpoint(r.URL.Path)

			count, err := mw.cacheService.IncrementRateLimit(clientIP, endpoint, window)
			if err != nil {
				mw.logger.Error("Rate limit cache error, blocking request",
					gecho.Field("error", err),
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
				)

				gecho.ServiceUnavailable(w,
					gecho.WithMessage("error.serviceTemporarilyUnavailable"),
					gecho.Send(),
				)
				return
			}

			if count > limit {
				mw.logger.Warn("Strict rate limit exceeded",
					gecho.Field("ip", clientIP),
					gecho.Field("endpoint", endpoint),
					gecho.Field("count", count),
					gecho.Field("limit", limit),
				)

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.Header().Set("Content-Type", "application/json")

				http.Error(w, `{"message":"Rate limit exceeded"}`, http.StatusTooManyRequests)
				return
			}

			remaining := limit - count
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

			next.ServeHTTP(w, r)
		})
	}
}
