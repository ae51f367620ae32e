package bridge

import (
	"context"
	"fmt"

	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// ConversionHandler receives attribution SDK callbacks.
type ConversionHandler interface {
	OnConversionDataSuccess(data map[string]any)
	OnConversionDataFail(message string)
	OnAppOpenAttribution(data map[string]string)
	OnAttributionFailure(message string)
}

// CallbackRouter decodes callback envelopes and dispatches them by type.
type CallbackRouter struct {
	handler ConversionHandler
	logger  *zap.Logger
}

func NewCallbackRouter(handler ConversionHandler, logger *zap.Logger) *CallbackRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallbackRouter{handler: handler, logger: logger}
}

// Handle satisfies Handler.
func (r *CallbackRouter) Handle(_ context.Context, data []byte) error {
	var cb Callback
	if err := msgpack.Unmarshal(data, &cb); err != nil {
		return errors.NewDecodeError("failed to decode callback envelope", "callbacks", err)
	}
	return r.Route(cb)
}

func (r *CallbackRouter) Route(cb Callback) error {
	r.logger.Debug("Callback received", zap.String("type", cb.Type))

	switch cb.Type {
	case CallbackConversionDataSuccess:
		r.handler.OnConversionDataSuccess(cb.Data)
	case CallbackConversionDataFail:
		r.handler.OnConversionDataFail(cb.Message)
	case CallbackAppOpenAttribution:
		r.handler.OnAppOpenAttribution(payload.ToStringMap(payload.Payload(cb.Data)))
	case CallbackAttributionFailure:
		r.handler.OnAttributionFailure(cb.Message)
	default:
		return fmt.Errorf("unknown callback type %q", cb.Type)
	}
	return nil
}
