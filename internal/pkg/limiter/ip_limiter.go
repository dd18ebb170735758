// Package limiter rate-limits requests per client IP with a token bucket.
// Idle buckets are evicted by a background sweep so the map does not grow
// with every address ever seen.
package limiter

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"worko/internal/pkg/errs"
	"worko/internal/pkg/logx"
	"worko/internal/pkg/resp"
)

// sweepInterval is how often idle buckets are evicted.
const sweepInterval = 3 * time.Minute

// IPRateLimiter holds one token bucket per client IP address.
type IPRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter

	// r and b configure each new bucket: r events per second with
	// bursts of up to b.
	r rate.Limit
	b int
}

// NewIPRateLimiter returns a limiter allowing r events per second with a
// burst of b per IP, and starts the eviction sweep.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	l := &IPRateLimiter{
		buckets: make(map[string]*rate.Limiter),
		r:       r,
		b:       b,
	}

	go l.sweep()

	return l
}

// bucket returns the limiter for ip, creating it on first sight.
func (l *IPRateLimiter) bucket(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = rate.NewLimiter(l.r, l.b)
		l.buckets[ip] = b
	}

	return b
}

// sweep periodically removes buckets that have refilled completely; a full
// bucket means the IP has been idle long enough to forget.
func (l *IPRateLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		removed := 0
		for ip, b := range l.buckets {
			if b.TokensAt(time.Now()) >= float64(b.Burst()) {
				delete(l.buckets, ip)
				removed++
			}
		}
		remaining := len(l.buckets)
		l.mu.Unlock()

		logx.Info("rate limiter sweep", "removed", removed, "remaining", remaining)
	}
}

// Middleware rejects requests exceeding the per-IP budget with a 429
// envelope and passes everything else through.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if ip == "" {
			ip = "unknown_ip"
		}

		if !l.bucket(ip).Allow() {
			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimited))
			return
		}

		next.ServeHTTP(w, r)
	})
}
