package generation

import (
	"context"
	"log"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/ratelimit"
)

// NewClientFromConfig wires the Gemini completer and the configured guards.
// Without an API key the client has no completer and every call returns the
// fallback text. The limiter is returned so its stats can be exposed.
func NewClientFromConfig(ctx context.Context, cfg *config.Config) (*Client, *ratelimit.RateLimiter) {
	rl := ratelimit.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.RequestsPerDay,
		cfg.RateLimit.Enabled,
	)
	log.Printf("[generation] Rate limiter initialized: %d req/min, %d req/hour, %d req/day (enabled: %v)",
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.RequestsPerHour,
		cfg.RateLimit.RequestsPerDay,
		cfg.RateLimit.Enabled,
	)

	opts := []Option{
		WithModel(cfg.Generation.Model),
		WithTimeout(cfg.Generation.GetTimeout()),
		WithRateLimiter(rl),
	}
	if cfg.CircuitBreaker.Enabled {
		opts = append(opts, WithCircuitBreaker(NewCircuitBreaker(
			cfg.CircuitBreaker.ConsecutiveFailures,
			cfg.CircuitBreaker.GetResetTimeout(),
		)))
	}

	var completer Completer
	if cfg.Generation.APIKey == "" {
		log.Println("[generation] Warning: no API key configured, drafts will use fallback text")
	} else {
		gc, err := NewGenAICompleter(ctx, cfg.Generation.APIKey, cfg.Generation.BaseURL)
		if err != nil {
			log.Printf("[generation] Warning: %v, drafts will use fallback text", err)
		} else {
			completer = gc
		}
	}

	c := NewClient(completer, opts...)
	log.Printf("[generation] Using model %s", c.Model())
	return c, rl
}
