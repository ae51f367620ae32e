package bridge

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type BreakerState string

const (
	BreakerClosed   BreakerState = "CLOSED"    // 정상 발행
	BreakerOpen     BreakerState = "OPEN"      // 발행 차단
	BreakerHalfOpen BreakerState = "HALF_OPEN" // 시험 발행
)

func (s BreakerState) String() string {
	return string(s)
}

// Breaker stops publishing after repeated Redis failures so that tracker calls
// fail fast instead of each waiting out the publish timeout. After
// resetTimeout one trial publish is let through.
type Breaker struct {
	mu           sync.Mutex
	state        BreakerState
	failures     int
	threshold    int
	resetTimeout time.Duration
	openedAt     time.Time
	now          func() time.Time
	logger       *zap.Logger
}

func NewBreaker(threshold int, resetTimeout time.Duration, logger *zap.Logger) *Breaker {
	if threshold <= 0 {
		threshold = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Breaker{
		state:        BreakerClosed,
		threshold:    threshold,
		resetTimeout: resetTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Allow reports whether a publish may be attempted.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerOpen:
		if b.now().Sub(b.openedAt) < b.resetTimeout {
			return false
		}
		b.transitionTo(BreakerHalfOpen)
		return true
	case BreakerHalfOpen:
		// one trial at a time
		return false
	default:
		return true
	}
}

func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	if b.state != BreakerClosed {
		b.transitionTo(BreakerClosed)
	}
}

func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if b.state == BreakerHalfOpen || b.failures >= b.threshold {
		b.openedAt = b.now()
		if b.state != BreakerOpen {
			b.transitionTo(BreakerOpen)
		}
	}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// transitionTo must be called with b.mu held.
func (b *Breaker) transitionTo(next BreakerState) {
	b.logger.Info("Publish breaker state transition",
		zap.String("from", b.state.String()),
		zap.String("to", next.String()),
		zap.Int("failures", b.failures),
	)
	b.state = next
}
