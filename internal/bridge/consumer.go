package bridge

import (
	"context"
	"errors"
	"time"

	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Handler processes one raw queue entry.
type Handler func(ctx context.Context, data []byte) error

// Consumer pops entries from one Redis list with BLPOP and hands them to a
// Handler. A handler error is logged and the entry is dropped.
type Consumer struct {
	client      redis.Cmdable
	queue       string
	pollTimeout time.Duration
	handler     Handler
	logger      *zap.Logger
}

func NewConsumer(client redis.Cmdable, queue string, pollTimeout time.Duration, handler Handler, logger *zap.Logger) *Consumer {
	if pollTimeout <= 0 {
		pollTimeout = constants.BridgeConfig.PollTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		client:      client,
		queue:       queue,
		pollTimeout: pollTimeout,
		handler:     handler,
		logger:      logger,
	}
}

func (c *Consumer) Queue() string {
	return c.queue
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Queue consumer started", zap.String("queue", c.queue))
	defer c.logger.Info("Queue consumer stopped", zap.String("queue", c.queue))

	for {
		if ctx.Err() != nil {
			return nil
		}

		result, err := c.client.BLPop(ctx, c.pollTimeout, c.queue).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Queue poll failed", zap.String("queue", c.queue), zap.Error(err))
			if !sleepCtx(ctx, time.Second) {
				return nil
			}
			continue
		}

		// BLPOP returns [key, value]
		if len(result) != 2 {
			continue
		}
		if err := c.handler(ctx, []byte(result[1])); err != nil {
			c.logger.Warn("Queue entry dropped",
				zap.String("queue", c.queue),
				zap.Error(err),
			)
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
