package command

import (
	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"go.uber.org/zap"
)

// HostTracker sends events back into the host analytics SDK.
type HostTracker interface {
	Track(event string, data map[string]any)
}

// ConversionListener forwards attribution SDK callbacks to the host.
type ConversionListener struct {
	host   HostTracker
	logger *zap.Logger
}

func NewConversionListener(host HostTracker, logger *zap.Logger) *ConversionListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConversionListener{host: host, logger: logger}
}

// OnConversionDataSuccess only reports the first launch; later deliveries of
// the same conversion data are dropped.
func (l *ConversionListener) OnConversionDataSuccess(data map[string]any) {
	if !payload.Payload(data).OptBoolean(constants.Tracking.IsFirstLaunch, false) {
		l.logger.Debug("Skipping conversion data for repeat launch")
		return
	}
	l.track(constants.Callbacks.ConversionDataReceived, data)
}

func (l *ConversionListener) OnConversionDataFail(message string) {
	l.trackError(constants.Callbacks.ConversionDataFailure, message)
}

func (l *ConversionListener) OnAppOpenAttribution(data map[string]string) {
	attribution := make(map[string]any, len(data))
	for key, value := range data {
		attribution[key] = value
	}
	l.track(constants.Callbacks.AppOpenAttribution, attribution)
}

func (l *ConversionListener) OnAttributionFailure(message string) {
	l.trackError(constants.Callbacks.AttributionFailure, message)
}

func (l *ConversionListener) trackError(name, message string) {
	l.logger.Warn("Attribution callback failed",
		zap.String("error_name", name),
		zap.String("error_message", message),
	)
	l.track(constants.Callbacks.Error, map[string]any{
		constants.Callbacks.ErrorName:    name,
		constants.Callbacks.ErrorMessage: message,
	})
}

func (l *ConversionListener) track(event string, data map[string]any) {
	if l.host == nil {
		l.logger.Warn("No host tracker for callback", zap.String("event", event))
		return
	}
	l.host.Track(event, data)
}
