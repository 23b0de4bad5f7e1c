// Package ratelimit caps how often the completion service is called.
package ratelimit

import (
	"sync"
	"time"
)

// window is a sliding log of request times bounded by limit
type window struct {
	span  time.Duration
	limit int
	hits  []time.Time
}

func (w *window) prune(now time.Time) {
	cutoff := now.Add(-w.span)
	kept := w.hits[:0]
	for _, t := range w.hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.hits = kept
}

func (w *window) full() bool {
	return w.limit > 0 && len(w.hits) >= w.limit
}

func (w *window) remaining() int {
	if w.limit <= 0 {
		return 0
	}
	if r := w.limit - len(w.hits); r > 0 {
		return r
	}
	return 0
}

// RateLimiter enforces per-minute, per-hour and per-day request limits.
// A limit of zero disables that window.
type RateLimiter struct {
	enabled bool
	minute  window
	hour    window
	day     window
	now     func() time.Time
	mu      sync.Mutex
}

// NewRateLimiter creates a new rate limiter with the given limits
func NewRateLimiter(requestsPerMinute, requestsPerHour, requestsPerDay int, enabled bool) *RateLimiter {
	return &RateLimiter{
		enabled: enabled,
		minute:  window{span: time.Minute, limit: requestsPerMinute},
		hour:    window{span: time.Hour, limit: requestsPerHour},
		day:     window{span: 24 * time.Hour, limit: requestsPerDay},
		now:     time.Now,
	}
}

func (rl *RateLimiter) windows() []*window {
	return []*window{&rl.minute, &rl.hour, &rl.day}
}

// AllowRequest records a request and reports whether it fits in every window
func (rl *RateLimiter) AllowRequest() bool {
	if !rl.enabled {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for _, w := range rl.windows() {
		w.prune(now)
		if w.full() {
			return false
		}
	}
	for _, w := range rl.windows() {
		w.hits = append(w.hits, now)
	}
	return true
}

// Stats contains rate limiter statistics
type Stats struct {
	Enabled             bool `json:"enabled"`
	RequestsLastMinute  int  `json:"requests_last_minute"`
	RequestsLastHour    int  `json:"requests_last_hour"`
	RequestsLastDay     int  `json:"requests_last_day"`
	LimitPerMinute      int  `json:"limit_per_minute"`
	LimitPerHour        int  `json:"limit_per_hour"`
	LimitPerDay         int  `json:"limit_per_day"`
	RemainingThisMinute int  `json:"remaining_this_minute"`
	RemainingThisHour   int  `json:"remaining_this_hour"`
	RemainingThisDay    int  `json:"remaining_this_day"`
}

// GetStats returns current rate limiter statistics
func (rl *RateLimiter) GetStats() Stats {
	if !rl.enabled {
		return Stats{Enabled: false}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for _, w := range rl.windows() {
		w.prune(now)
	}

	return Stats{
		Enabled:             true,
		RequestsLastMinute:  len(rl.minute.hits),
		RequestsLastHour:    len(rl.hour.hits),
		RequestsLastDay:     len(rl.day.hits),
		LimitPerMinute:      rl.minute.limit,
		LimitPerHour:        rl.hour.limit,
		LimitPerDay:         rl.day.limit,
		RemainingThisMinute: rl.minute.remaining(),
		RemainingThisHour:   rl.hour.remaining(),
		RemainingThisDay:    rl.day.remaining(),
	}
}

// Reset clears all tracked requests
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for _, w := range rl.windows() {
		w.hits = nil
	}
}
