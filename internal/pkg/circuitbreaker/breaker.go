// Package circuitbreaker sheds load from a failing dependency by rejecting
// requests while it recovers.
package circuitbreaker

import (
	"sync"
	"time"
)

// State of the breaker.
type State int

const (
	Closed State = iota
	Open
	HalfOpen
)

// Breaker trips open after threshold consecutive failures. After timeout it
// lets up to halfOpenMax probe requests through; one success closes it, one
// failure reopens it.
type Breaker struct {
	mu          sync.Mutex
	state       State
	failures    int
	threshold   int
	timeout     time.Duration
	halfOpenMax int
	halfOpenIn  int
	lastFailure time.Time
}

func NewBreaker(threshold int, timeout time.Duration, halfOpenMax int) *Breaker {
	return &Breaker{
		state:       Closed,
		threshold:   threshold,
		timeout:     timeout,
		halfOpenMax: halfOpenMax,
	}
}

// Allow reports whether a request may proceed, advancing Open to HalfOpen
// once the timeout has passed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case Open:
		if time.Since(b.lastFailure) > b.timeout {
			b.state = HalfOpen
			b.halfOpenIn = 0
			return true
		}
		return false
	case HalfOpen:
		if b.halfOpenIn >= b.halfOpenMax {
			return false
		}
		b.halfOpenIn++
		return true
	default:
		return true
	}
}

// RecordSuccess resets the failure count and closes a half-open breaker.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == HalfOpen {
		b.state = Closed
	}
	if b.state == Closed {
		b.failures = 0
	}
}

// RecordFailure counts a failure, tripping the breaker at the threshold.
// Any failure while half-open reopens it immediately.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailure = time.Now()

	switch b.state {
	case Closed:
		if b.failures >= b.threshold {
			b.state = Open
		}
	case HalfOpen:
		b.state = Open
	}
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
