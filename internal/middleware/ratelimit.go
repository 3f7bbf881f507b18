package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterCleanupInterval = 5 * time.Minute

// KeyFunc groups requests for rate limiting.
type KeyFunc func(*http.Request) string

// ClientIP returns a KeyFunc that keys requests by the remote address.
// Forwarding headers are honoured only when the remote address belongs to one
// of trustedProxies (IPs or CIDRs); the key is then the nearest untrusted hop
// in X-Forwarded-For, or X-Real-IP.
func ClientIP(trustedProxies []string) (KeyFunc, error) {
	trusted := make([]netip.Prefix, 0, len(trustedProxies))
	for _, p := range trustedProxies {
		prefix, err := parseProxy(p)
		if err != nil {
			return nil, err
		}
		trusted = append(trusted, prefix)
	}

	isTrusted := func(addr netip.Addr) bool {
		for _, p := range trusted {
			if p.Contains(addr) {
				return true
			}
		}
		return false
	}

	return func(r *http.Request) string {
		remote := remoteIP(r.RemoteAddr)
		addr, err := netip.ParseAddr(remote)
		if err != nil || !isTrusted(addr.Unmap()) {
			return remote
		}

		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			hops := strings.Split(xff, ",")
			for i := len(hops) - 1; i >= 0; i-- {
				hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
				if err != nil {
					break
				}
				if !isTrusted(hop.Unmap()) || i == 0 {
					return hop.Unmap().String()
				}
			}
		}
		if xri, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
			return xri.Unmap().String()
		}
		return remote
	}, nil
}

func parseProxy(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid trusted proxy %q: %w", s, err)
		}
		return prefix.Masked(), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid trusted proxy %q: %w", s, err)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func remoteIP(remoteAddr string) string {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return ip
}

type limiterSet struct {
	limit rate.Limit
	burst int

	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	lastCleanup time.Time
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Limiters with a full bucket have been idle and are dropped.
	if time.Since(s.lastCleanup) > limiterCleanupInterval {
		for k, l := range s.limiters {
			if l.Tokens() >= float64(s.burst) {
				delete(s.limiters, k)
			}
		}
		s.lastCleanup = time.Now()
	}

	l, ok := s.limiters[key]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = l
	}
	return l
}

// RateLimit allows perMinute requests per key with the given burst and answers
// 429 beyond that. Requests without a key pass through.
func RateLimit(perMinute, burst int, key KeyFunc, logger *slog.Logger) func(http.Handler) http.Handler {
	set := &limiterSet{
		limit:       rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		burst:       burst,
		limiters:    make(map[string]*rate.Limiter),
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			limiter := set.get(k)
			if !limiter.Allow() {
				reservation := limiter.Reserve()
				retryAfter := max(int(reservation.Delay().Seconds()), 1)
				reservation.Cancel()

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				logger.WarnContext(r.Context(), "rate limit exceeded",
					"key", k,
					"path", r.URL.Path,
					"retry_after", retryAfter,
				)
				writeError(w, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
