package bridge

import (
	"context"
	"time"

	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// Publisher appends msgpack envelopes to Redis lists.
type Publisher struct {
	client  redis.Cmdable
	timeout time.Duration
	breaker *Breaker
	logger  *zap.Logger
}

type PublisherOption func(*Publisher)

// WithBreaker makes the publisher fail fast while Redis is unavailable.
func WithBreaker(b *Breaker) PublisherOption {
	return func(p *Publisher) {
		p.breaker = b
	}
}

func NewPublisher(client redis.Cmdable, timeout time.Duration, logger *zap.Logger, opts ...PublisherOption) *Publisher {
	if timeout <= 0 {
		timeout = constants.BridgeConfig.PublishTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Publisher{client: client, timeout: timeout, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish encodes v and RPUSHes it onto queue.
func (p *Publisher) Publish(ctx context.Context, queue, operation string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return errors.NewBridgeError("failed to encode envelope", operation, queue, err)
	}

	if p.breaker != nil && !p.breaker.Allow() {
		return errors.NewBridgeError("publish breaker is open", operation, queue, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.RPush(ctx, queue, data).Err(); err != nil {
		if p.breaker != nil {
			p.breaker.RecordFailure()
		}
		return errors.NewBridgeError("failed to publish envelope", operation, queue, err)
	}
	if p.breaker != nil {
		p.breaker.RecordSuccess()
	}

	p.logger.Debug("Envelope published",
		zap.String("queue", queue),
		zap.String("operation", operation),
		zap.Int("bytes", len(data)),
	)
	return nil
}
