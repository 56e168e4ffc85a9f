package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/SmartShelf_Go/internal/logger"
	"github.com/osse101/SmartShelf_Go/internal/metrics"
)

// AuthMiddleware validates the shared API key. Public paths pass through.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *AbuseGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := ClientIP(r, trustedProxies)
				guard.RecordFailedAuth(ip)
				metrics.HTTPRejectedTotal.WithLabelValues(metrics.ReasonUnauthorized).Inc()

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
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
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

// AbuseGuard counts requests and failed authentications per client IP in a
// fixed window
type AbuseGuard struct {
	mu               sync.Mutex
	window           time.Duration
	maxRequests      int
	failedAuthAlert  int
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	windowStart      time.Time
	now              func() time.Time
}

// NewAbuseGuard creates a guard with the default window and limits
func NewAbuseGuard() *AbuseGuard {
	return newAbuseGuard(DefaultAbuseWindow, DefaultMaxRequestsPerWindow, DefaultFailedAuthAlert, time.Now)
}

func newAbuseGuard(window time.Duration, maxRequests, failedAuthAlert int, now func() time.Time) *AbuseGuard {
	return &AbuseGuard{
		window:           window,
		maxRequests:      maxRequests,
		failedAuthAlert:  failedAuthAlert,
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		windowStart:      now(),
		now:              now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (g *AbuseGuard) RecordFailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollWindow()
	g.failedAuthByIP[ip]++

	if g.failedAuthByIP[ip] >= g.failedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", g.failedAuthByIP[ip])
	}
}

// Allow records a request and reports whether ip is still under its limit
func (g *AbuseGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollWindow()
	g.requestCountByIP[ip]++

	count := g.requestCountByIP[ip]
	if count > g.maxRequests {
		// Log every 100th rejection
		if count%100 == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", count)
		}
		return false
	}
	return true
}

// rollWindow resets the counters once the window has passed.
// Caller must hold the mutex.
func (g *AbuseGuard) rollWindow() {
	if now := g.now(); now.Sub(g.windowStart) > g.window {
		g.requestCountByIP = make(map[string]int)
		g.failedAuthByIP = make(map[string]int)
		g.windowStart = now
	}
}

// RateLimitMiddleware rejects clients that exceed the guard's request limit
func RateLimitMiddleware(trustedProxies []string, guard *AbuseGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.Allow(ClientIP(r, trustedProxies)) {
				metrics.HTTPRejectedTotal.WithLabelValues(metrics.ReasonRateLimited).Inc()
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP gets the client IP address from the request. X-Forwarded-For is
// only trusted when the request comes from a trusted proxy.
func ClientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	trusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			trusted = true
			break
		}
	}

	if trusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// The rightmost entry is the hop that reached our proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				// Shelf contents are per-owner
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
