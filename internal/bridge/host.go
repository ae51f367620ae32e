package bridge

import (
	"context"

	"go.uber.org/zap"
)

// HostEvents publishes events for the host analytics SDK to track.
type HostEvents struct {
	publisher *Publisher
	queue     string
	logger    *zap.Logger
}

func NewHostEvents(publisher *Publisher, queue string, logger *zap.Logger) *HostEvents {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HostEvents{publisher: publisher, queue: queue, logger: logger}
}

func (h *HostEvents) Track(event string, data map[string]any) {
	envelope := newHostEvent(event, data)
	if err := h.publisher.Publish(context.Background(), h.queue, event, envelope); err != nil {
		h.logger.Error("Failed to publish host event",
			zap.String("event", event),
			zap.Error(err),
		)
	}
}
