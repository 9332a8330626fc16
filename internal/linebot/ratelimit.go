package linebot

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"
)

// maxTrackedSources bounds the number of per-source limiters kept in memory.
const maxTrackedSources = 10000

// SourceLimiter rate limits replies per LINE user, group or room.
type SourceLimiter struct {
	limiters *lru.Cache
	every    time.Duration
	burst    int
}

// NewSourceLimiter allows perMinute replies per source with the given burst.
func NewSourceLimiter(perMinute, burst int) (*SourceLimiter, error) {
	if perMinute <= 0 {
		return nil, fmt.Errorf("linebot: rate must be positive, got %d", perMinute)
	}
	if burst <= 0 {
		burst = 1
	}
	cache, err := lru.New(maxTrackedSources)
	if err != nil {
		return nil, fmt.Errorf("linebot: failed to create limiter cache: %w", err)
	}
	return &SourceLimiter{
		limiters: cache,
		every:    time.Minute / time.Duration(perMinute),
		burst:    burst,
	}, nil
}

// Allow reports whether source may receive another reply now.
func (l *SourceLimiter) Allow(source string) bool {
	if v, ok := l.limiters.Get(source); ok {
		return v.(*rate.Limiter).Allow()
	}
	limiter := rate.NewLimiter(rate.Every(l.every), l.burst)
	// Two events from one source can race here; the loser's limiter is dropped.
	if prev, ok, _ := l.limiters.PeekOrAdd(source, limiter); ok {
		limiter = prev.(*rate.Limiter)
	}
	return limiter.Allow()
}
