package bridge

import (
	"time"

	"github.com/google/uuid"
)

// Operation is one tracker call as published to the operations queue.
type Operation struct {
	RequestID   string         `msgpack:"request_id"`
	Operation   string         `msgpack:"operation"`
	Args        map[string]any `msgpack:"args"`
	TimestampMs int64          `msgpack:"timestamp_ms"`
}

// Callback is one attribution SDK callback read from the callbacks queue.
type Callback struct {
	Type    string         `msgpack:"type"`
	Data    map[string]any `msgpack:"data"`
	Message string         `msgpack:"message"`
}

// HostEvent is an event sent back into the host analytics SDK.
type HostEvent struct {
	RequestID   string         `msgpack:"request_id"`
	Event       string         `msgpack:"event"`
	Data        map[string]any `msgpack:"data"`
	TimestampMs int64          `msgpack:"timestamp_ms"`
}

// Callback types understood by CallbackRouter.
const (
	CallbackConversionDataSuccess = "conversion_data_success"
	CallbackConversionDataFail    = "conversion_data_fail"
	CallbackAppOpenAttribution    = "app_open_attribution"
	CallbackAttributionFailure    = "attribution_failure"
)

func newOperation(name string, args map[string]any) *Operation {
	if args == nil {
		args = map[string]any{}
	}
	return &Operation{
		RequestID:   uuid.New().String(),
		Operation:   name,
		Args:        args,
		TimestampMs: time.Now().UnixMilli(),
	}
}

func newHostEvent(event string, data map[string]any) *HostEvent {
	return &HostEvent{
		RequestID:   uuid.New().String(),
		Event:       event,
		Data:        data,
		TimestampMs: time.Now().UnixMilli(),
	}
}
