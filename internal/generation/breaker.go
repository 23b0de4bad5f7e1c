package generation

import (
	"log"
	"sync"
	"time"
)

// CircuitBreaker stops calling the completion service after repeated failures
// and lets a single probe through once resetTimeout has passed.
type CircuitBreaker struct {
	consecutiveThreshold int
	windowSize           int
	maxFailureRate       float64
	resetTimeout         time.Duration
	now                  func() time.Time

	failures            int
	total               int
	consecutiveFailures int
	isOpen              bool
	openedAt            time.Time

	mutex sync.Mutex
}

// NewCircuitBreaker opens after consecutiveThreshold failures in a row, or
// when 40% of the last 20 calls failed.
func NewCircuitBreaker(consecutiveThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	if consecutiveThreshold <= 0 {
		consecutiveThreshold = 3
	}
	return &CircuitBreaker{
		consecutiveThreshold: consecutiveThreshold,
		windowSize:           20,
		maxFailureRate:       0.40,
		resetTimeout:         resetTimeout,
		now:                  time.Now,
	}
}

// RecordSuccess records a completed call
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.total++
	cb.consecutiveFailures = 0
	cb.rollWindow()
}

// RecordFailure records a failed or empty completion
func (cb *CircuitBreaker) RecordFailure() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.failures++
	cb.total++
	cb.consecutiveFailures++

	if cb.consecutiveFailures >= cb.consecutiveThreshold {
		cb.open("consecutive failures")
		return
	}
	if cb.total >= cb.windowSize {
		if rate := float64(cb.failures) / float64(cb.total); rate >= cb.maxFailureRate {
			cb.open("failure rate")
			return
		}
		cb.rollWindow()
	}
}

func (cb *CircuitBreaker) open(reason string) {
	if !cb.isOpen {
		log.Printf("[generation] circuit breaker open (%s: %d/%d failed), retry after %v",
			reason, cb.failures, cb.total, cb.resetTimeout)
	}
	cb.isOpen = true
	cb.openedAt = cb.now()
}

// rollWindow restarts rate counting once a full window has been seen
func (cb *CircuitBreaker) rollWindow() {
	if cb.total >= cb.windowSize {
		cb.failures = 0
		cb.total = 0
	}
}

// CanProceed reports whether a call may be attempted
func (cb *CircuitBreaker) CanProceed() bool {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if !cb.isOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) > cb.resetTimeout {
		log.Printf("[generation] circuit breaker half-open after %v", cb.resetTimeout)
		cb.isOpen = false
		cb.failures = 0
		cb.total = 0
		cb.consecutiveFailures = 0
		return true
	}
	return false
}

// GetStatus returns current circuit breaker status
func (cb *CircuitBreaker) GetStatus() (isOpen bool, failures int, total int) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.isOpen, cb.failures, cb.total
}
