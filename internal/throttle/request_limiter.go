package throttle

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedKeys bounds the limiter map.
const maxTrackedKeys = 10000

// RequestLimiter keeps one token bucket per key. When the map is full,
// buckets that have refilled completely are dropped, since they behave
// exactly like a new one. If none has, new keys share a single overflow
// bucket until room frees up, so rotating keys never buys fresh budget.
type RequestLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	overflow *rate.Limiter
	limit    rate.Limit
	burst    int
	maxKeys  int
	now      func() time.Time
}

// NewRequestLimiter allows perMinute events per key per minute with the
// given burst.
func NewRequestLimiter(perMinute float64, burst int) *RequestLimiter {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(perMinute / 60)
	return &RequestLimiter{
		limiters: make(map[string]*rate.Limiter),
		overflow: rate.NewLimiter(limit, burst),
		limit:    limit,
		burst:    burst,
		maxKeys:  maxTrackedKeys,
		now:      time.Now,
	}
}

func (l *RequestLimiter) limiter(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.limiters[key]; ok {
		return lim
	}
	if len(l.limiters) >= l.maxKeys {
		l.evictRefilled(now)
		if len(l.limiters) >= l.maxKeys {
			return l.overflow
		}
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters[key] = lim
	return lim
}

// evictRefilled drops every bucket that is full again at now.
func (l *RequestLimiter) evictRefilled(now time.Time) {
	for key, lim := range l.limiters {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}

// Allow consumes one token for key and reports whether one was available.
func (l *RequestLimiter) Allow(key string) bool {
	now := l.now()
	return l.limiter(key, now).AllowN(now, 1)
}
