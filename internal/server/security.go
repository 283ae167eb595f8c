package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

// AuthMiddleware requires the X-API-Key header on every non-public path.
// An empty apiKey disables the check.
func AuthMiddleware(apiKey string, trustedProxies TrustedProxies, limiter *RateLimiter) func(http.Handler) http.Handler {
	if apiKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				limiter.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter counts requests and failed logins per IP over a fixed window
type RateLimiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	failedAuth map[string]int
	requests   map[string]int
	resetAt    time.Time
	now        func() time.Time
}

// NewRateLimiter allows limit requests per IP in each window
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	l := &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	l.reset()
	return l
}

func (l *RateLimiter) reset() {
	l.failedAuth = make(map[string]int)
	l.requests = make(map[string]int)
	l.resetAt = l.now().Add(l.window)
}

// Caller must hold the mutex
func (l *RateLimiter) resetIfExpired() {
	if l.now().After(l.resetAt) {
		l.reset()
	}
}

// RecordFailedAuth counts a failed login and alerts past the threshold
func (l *RateLimiter) RecordFailedAuth(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resetIfExpired()
	l.failedAuth[ip]++
	if count := l.failedAuth[ip]; count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// Allow records a request and reports whether ip is still under the limit
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resetIfExpired()
	l.requests[ip]++
	count := l.requests[ip]
	if count <= l.limit {
		return true
	}
	// Log every 100th rejection
	if (count-l.limit)%100 == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", count, "window", l.window)
	}
	return false
}

// RateLimitMiddleware rejects clients over the limiter's per-IP rate
func RateLimitMiddleware(trustedProxies TrustedProxies, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies is the set of peers whose X-Forwarded-For header is honoured
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts bare addresses and CIDR ranges. Entries that are
// neither are skipped; config validation warns about them at startup.
func ParseTrustedProxies(entries []string) TrustedProxies {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			proxies = append(proxies, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			proxies = append(proxies, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return proxies
}

// Contains reports whether ip falls inside any trusted range
func (t TrustedProxies) Contains(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return slices.ContainsFunc(t, func(p netip.Prefix) bool {
		return p.Contains(addr)
	})
}

// extractIP returns the client IP. X-Forwarded-For is only honoured when the
// direct peer is a trusted proxy, and then its rightmost entry is used.
func extractIP(r *http.Request, trustedProxies TrustedProxies) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !trustedProxies.Contains(remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
