// Package infra holds small concurrency primitives shared by the device layer.
package infra

import (
	"fmt"
	"sync"
	"time"
)

// CircuitState is the state of a Breaker.
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // connects are attempted
	CircuitOpen                         // connects fail fast
	CircuitHalfOpen                     // a limited number of probes are let through
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker stops dialing a device that keeps refusing connections. It counts
// consecutive connect failures and opens after the threshold; after the reset
// window a few probe connects are allowed through.
type Breaker struct {
	mu sync.Mutex

	threshold   int
	reset       time.Duration
	halfOpenMax int
	now         func() time.Time

	state         CircuitState
	fails         int
	lastFailure   time.Time
	halfOpenCount int
}

// NewBreaker returns a breaker that opens after threshold consecutive
// failures and probes again after reset. A threshold of zero or less yields
// a breaker that never opens.
func NewBreaker(threshold int, reset time.Duration) *Breaker {
	return &Breaker{
		threshold:   threshold,
		reset:       reset,
		halfOpenMax: 1,
		now:         time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (b *Breaker) WithClock(now func() time.Time) *Breaker {
	b.mu.Lock()
	b.now = now
	b.mu.Unlock()
	return b
}

// Allow reports whether a connect may be attempted.
func (b *Breaker) Allow() bool {
	if b.threshold <= 0 {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitClosed:
		return true
	case CircuitOpen:
		if b.now().Sub(b.lastFailure) >= b.reset {
			b.state = CircuitHalfOpen
			b.halfOpenCount = 1
			return true
		}
		return false
	case CircuitHalfOpen:
		if b.halfOpenCount < b.halfOpenMax {
			b.halfOpenCount++
			return true
		}
		return false
	default:
		return false
	}
}

// Success records a completed connect and closes the circuit.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fails = 0
	b.state = CircuitClosed
	b.halfOpenCount = 0
}

// Failure records a failed connect.
func (b *Breaker) Failure() {
	if b.threshold <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.fails++
	b.lastFailure = b.now()

	switch b.state {
	case CircuitClosed:
		if b.fails >= b.threshold {
			b.state = CircuitOpen
		}
	case CircuitHalfOpen:
		b.state = CircuitOpen
		b.halfOpenCount = 0
	}
}

// Cancel records a connect that was abandoned by its caller before the
// device answered. It says nothing about the device, so the failure count is
// left alone, but a half-open probe slot is handed back for the next call.
func (b *Breaker) Cancel() {
	if b.threshold <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == CircuitHalfOpen && b.halfOpenCount > 0 {
		b.halfOpenCount--
	}
}

// State returns the current state.
func (b *Breaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Rejection describes why Allow returned false.
func (b *Breaker) Rejection() *ErrCircuitOpen {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &ErrCircuitOpen{
		Failures: b.fails,
		RetryAt:  b.lastFailure.Add(b.reset),
	}
}

// ErrCircuitOpen is logged when a connect is skipped because the breaker is open.
type ErrCircuitOpen struct {
	Failures int
	RetryAt  time.Time
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("device circuit open after %d consecutive connect failures, retry after %s",
		e.Failures, e.RetryAt.Format(time.RFC3339))
}
