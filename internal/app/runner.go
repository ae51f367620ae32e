package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/kapu/appsflyer-remote-command-go/internal/bridge"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Invoker runs one JSON payload through the remote command.
type Invoker interface {
	InvokeJSON(data []byte) error
}

// Source is a named stream of JSON payload objects.
type Source struct {
	Name   string
	Reader io.Reader
}

type Stats struct {
	Processed int64
	Failed    int64
}

// Runner feeds payload sources and queues into an Invoker.
type Runner struct {
	invoker     Invoker
	concurrency int
	consumers   []*bridge.Consumer
	logger      *zap.Logger
}

func NewRunner(invoker Invoker, concurrency int, logger *zap.Logger, consumers ...*bridge.Consumer) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		invoker:     invoker,
		concurrency: concurrency,
		consumers:   consumers,
		logger:      logger,
	}
}

// RunSources processes every source, several at a time. Payloads within one
// source keep their order. A payload the command rejects is counted and
// skipped; a stream that is not valid JSON stops that source only.
func (r *Runner) RunSources(ctx context.Context, sources ...Source) (Stats, error) {
	var processed, failed atomic.Int64

	p := pool.New().WithErrors().WithMaxGoroutines(r.concurrency)
	for _, source := range sources {
		source := source
		p.Go(func() error {
			return r.runSource(ctx, source, &processed, &failed)
		})
	}
	err := p.Wait()

	stats := Stats{Processed: processed.Load(), Failed: failed.Load()}
	r.logger.Info("Sources processed",
		zap.Int("sources", len(sources)),
		zap.Int64("processed", stats.Processed),
		zap.Int64("failed", stats.Failed),
	)
	return stats, err
}

func (r *Runner) runSource(ctx context.Context, source Source, processed, failed *atomic.Int64) error {
	dec := json.NewDecoder(source.Reader)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("source %s: %w", source.Name, err)
		}

		processed.Add(1)
		if err := r.invoker.InvokeJSON(raw); err != nil {
			failed.Add(1)
			r.logger.Warn("Payload rejected",
				zap.String("source", source.Name),
				zap.Error(err),
			)
		}
	}
}

// Listen consumes the configured queues until ctx is cancelled.
func (r *Runner) Listen(ctx context.Context) error {
	if len(r.consumers) == 0 {
		return fmt.Errorf("no queues to listen on")
	}

	p := pool.New().WithContext(ctx)
	for _, consumer := range r.consumers {
		consumer := consumer
		p.Go(func(ctx context.Context) error {
			return consumer.Run(ctx)
		})
	}
	return p.Wait()
}
