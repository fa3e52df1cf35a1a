package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/focusflow/focusflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CircuitState represents the state of a circuit breaker
type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// CircuitBreakerConfig holds configuration for the circuit breaker
type CircuitBreakerConfig struct {
	FailureThreshold int           // consecutive 5xx responses before opening
	SuccessThreshold int           // successes in half-open before closing
	Timeout          time.Duration // how long the circuit stays open
}

// DefaultCircuitBreakerConfig trips after five store failures in a row.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker sheds requests while the store backend keeps failing.
type CircuitBreaker struct {
	config    CircuitBreakerConfig
	state     CircuitState
	failures  int
	successes int
	openedAt  time.Time
	now       func() time.Time
	mutex     sync.Mutex
	log       *logger.Logger
}

// NewCircuitBreaker creates a new circuit breaker
func NewCircuitBreaker(config CircuitBreakerConfig, log *logger.Logger) *CircuitBreaker {
	if log == nil {
		log = logger.NewNop()
	}
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
		log:    log,
	}
}

// State reports the current state.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) allow() bool {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) < cb.config.Timeout {
		return false
	}
	cb.state = StateHalfOpen
	cb.successes = 0
	return true
}

func (cb *CircuitBreaker) record(status int, path string) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if status >= http.StatusInternalServerError {
		cb.successes = 0
		cb.failures++
		if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
			if cb.state != StateOpen {
				cb.log.Error("Circuit breaker opened",
					zap.String("path", path),
					zap.Int("failures", cb.failures))
			}
			cb.state = StateOpen
			cb.openedAt = cb.now()
		}
		return
	}

	cb.failures = 0
	if cb.state == StateHalfOpen {
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successes = 0
			cb.log.Info("Circuit breaker closed", zap.String("path", path))
		}
	}
}

// CircuitBreakerMiddleware answers 503 while the circuit is open.
func (cb *CircuitBreaker) CircuitBreakerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cb.allow() {
			recordRejected("circuit_open")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "service temporarily unavailable",
			})
			return
		}

		c.Next()

		cb.record(c.Writer.Status(), c.Request.URL.Path)
	}
}
