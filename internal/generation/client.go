// Package generation drafts outbound messages and listing copy through a
// text-completion service. Every failure degrades to a fixed fallback string.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/ratelimit"
)

// DefaultModel is the completion model used when none is configured
const DefaultModel = "gemini-3-flash-preview"

// DefaultContext is the draft context used when the caller passes none
const DefaultContext = "following up on interest"

// DescriptionFallback is returned when a listing description cannot be generated
const DescriptionFallback = "Error connecting to AI service."

var (
	errEmptyResponse = errors.New("empty completion")
	errRateLimited   = errors.New("generation rate limit exceeded")
	errCircuitOpen   = errors.New("generation circuit open")
)

// Completer sends a single prompt to a text-completion model
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Client builds prompts and calls the Completer
type Client struct {
	completer Completer
	model     string
	timeout   time.Duration
	limiter   *ratelimit.RateLimiter
	breaker   *CircuitBreaker
}

// Option configures a Client
type Option func(*Client)

// WithModel overrides DefaultModel
func WithModel(model string) Option {
	return func(c *Client) {
		if strings.TrimSpace(model) != "" {
			c.model = model
		}
	}
}

// WithTimeout bounds each completion call. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRateLimiter makes calls over the limit fail over to the fallback text
func WithRateLimiter(rl *ratelimit.RateLimiter) Option {
	return func(c *Client) { c.limiter = rl }
}

// WithCircuitBreaker skips the service while the breaker is open
func WithCircuitBreaker(cb *CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

func NewClient(completer Completer, opts ...Option) *Client {
	c := &Client{
		completer: completer,
		model:     DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// DraftMessage asks the model for a short outbound message to leadName about
// propertyName. It never fails: on any error the MessageFallback text is returned.
func (c *Client) DraftMessage(ctx context.Context, channel models.Channel, leadName, propertyName, draftContext string) string {
	text, err := c.complete(ctx, MessagePrompt(channel, leadName, propertyName, draftContext))
	if err != nil {
		log.Printf("[generation] draft %s for %q failed: %v", channel, leadName, err)
		return MessageFallback(leadName, propertyName)
	}
	return text
}

// DraftPropertyDescription writes marketing copy for a listing from free-text details
func (c *Client) DraftPropertyDescription(ctx context.Context, details string) string {
	text, err := c.complete(ctx, DescriptionPrompt(details))
	if err != nil {
		log.Printf("[generation] property description failed: %v", err)
		return DescriptionFallback
	}
	return text
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.completer == nil {
		return "", errors.New("no completion service configured")
	}
	if c.breaker != nil && !c.breaker.CanProceed() {
		return "", errCircuitOpen
	}
	if c.limiter != nil && !c.limiter.AllowRequest() {
		return "", errRateLimited
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.completer.Complete(ctx, c.model, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errEmptyResponse
	}
	if err != nil {
		if c.breaker != nil {
			c.breaker.RecordFailure()
		}
		return "", fmt.Errorf("complete with %s: %w", c.model, err)
	}
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
	return text, nil
}
