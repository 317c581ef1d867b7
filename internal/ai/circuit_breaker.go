package ai

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("ai circuit breaker is open")

// State is the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 2,
	}
}

// CircuitBreaker shields the rest of the API from a misbehaving model
// endpoint. After MaxFailures consecutive failures requests are
// rejected locally until ResetTimeout has passed, then a half-open
// probe window lets traffic through again.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             State
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}

	return cb.state != StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

func (cb *CircuitBreaker) GetState() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
