package command

import (
	"errors"
	"fmt"

	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/internal/util"
	rcerrors "github.com/kapu/appsflyer-remote-command-go/pkg/errors"
	"go.uber.org/zap"
)

// reservedKeys never reach implicit event parameters.
var reservedKeys = []string{
	constants.Commands.Key,
	constants.Config.DevKey,
	constants.Config.Debug,
	constants.Config.Settings,
	constants.Config.AppID,
	constants.Config.Method,
}

// implicitExcludedKeys also drops event parameter keys whose value was not an
// object.
var implicitExcludedKeys = append([]string{
	constants.Events.Parameters,
	constants.Events.ParametersShort,
}, reservedKeys...)

// RemoteCommand interprets host payloads and drives a domain.Tracker.
type RemoteCommand struct {
	id          string
	description string
	registry    *Registry
	tracker     domain.Tracker
	logger      *zap.Logger
}

type Option func(*RemoteCommand)

// WithID overrides the identifier the host registers the command under.
func WithID(id string) Option {
	return func(rc *RemoteCommand) {
		if id != "" {
			rc.id = id
		}
	}
}

func WithDescription(description string) Option {
	return func(rc *RemoteCommand) {
		if description != "" {
			rc.description = description
		}
	}
}

// NewRemoteCommand wires the built-in control commands to deps.Tracker.
func NewRemoteCommand(deps *Dependencies, opts ...Option) (*RemoteCommand, error) {
	if deps == nil || deps.Tracker == nil {
		return nil, rcerrors.ErrNilTracker
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := &RemoteCommand{
		id:          constants.Defaults.CommandID,
		description: constants.Defaults.CommandDescription,
		registry:    NewRegistry(),
		tracker:     deps.Tracker,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(rc)
	}

	for _, cmd := range builtinCommands(deps.Tracker, logger) {
		rc.registry.Register(cmd)
	}

	return rc, nil
}

func (rc *RemoteCommand) ID() string {
	return rc.id
}

func (rc *RemoteCommand) Description() string {
	return rc.description
}

// Registry exposes the command table so hosts can add their own commands.
func (rc *RemoteCommand) Registry() *Registry {
	return rc.registry
}

// Invoke processes one host payload. Validation problems are logged and never
// returned; the only errors are for a missing receiver or payload.
func (rc *RemoteCommand) Invoke(p payload.Payload) error {
	if rc == nil {
		return fmt.Errorf("remote command is nil")
	}
	if p == nil {
		return rcerrors.ErrNilPayload
	}

	rc.ParseCommands(SplitCommands(p), p)
	return nil
}

// InvokeJSON decodes a host payload and invokes it.
func (rc *RemoteCommand) InvokeJSON(data []byte) error {
	p, err := payload.Decode(data)
	if err != nil {
		return rcerrors.NewDecodeError("failed to decode remote command payload", rc.ID(), err)
	}
	return rc.Invoke(p)
}

// ParseCommands executes each token against p in order and returns how many
// of them reached the tracker. A failing token never stops the ones after it.
func (rc *RemoteCommand) ParseCommands(commands []string, p payload.Payload) int {
	executed := 0
	for _, command := range commands {
		if util.IsBlank(command) {
			continue
		}
		if rc.dispatch(util.Normalize(command), p) {
			executed++
		}
	}
	return executed
}

// StandardEvent returns the AppsFlyer event type for a tag-management event
// name.
func (rc *RemoteCommand) StandardEvent(command string) (string, bool) {
	return domain.StandardEvent(command)
}

func (rc *RemoteCommand) dispatch(command string, p payload.Payload) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			err := rcerrors.NewRemoteCommandError("remote command panicked", rcerrors.CodeRemoteCommand,
				map[string]any{"command": command}).WithCause(fmt.Errorf("%v", r))
			rc.logger.Error("Remote command panicked",
				zap.String("command", command),
				zap.Error(err),
			)
			ok = false
		}
	}()

	err := rc.registry.Execute(command, p)
	if err == nil {
		return true
	}
	if !errors.Is(err, rcerrors.ErrUnknownCommand) {
		logCommandError(rc.logger, command, err)
		return false
	}

	eventType, standard := rc.StandardEvent(command)
	if !standard {
		eventType = command
	}
	params := EventParameters(p)

	rc.logger.Debug("Tracking event",
		zap.String("command", command),
		zap.String("event_type", eventType),
		zap.Bool("standard", standard),
		zap.Int("params", len(params)),
	)
	rc.tracker.TrackEvent(eventType, params)
	return true
}

// EventParameters selects the parameters sent with a tracked event: an
// explicit event_parameters object, else the event object, else the whole
// payload minus reserved keys.
func EventParameters(p payload.Payload) map[string]any {
	if params := p.OptObject(constants.Events.Parameters); params != nil {
		return payload.ToMap(params)
	}
	if params := p.OptObject(constants.Events.ParametersShort); params != nil {
		return payload.ToMap(params)
	}
	return p.Without(implicitExcludedKeys...)
}

// logCommandError writes the single diagnostic for a skipped command or
// setting. Rejected values are errors; absent keys are warnings.
func logCommandError(logger *zap.Logger, command string, err error) {
	var ve *rcerrors.ValidationError
	if !errors.As(err, &ve) {
		logger.Error("Remote command failed",
			zap.String("command", command),
			zap.Error(err),
		)
		return
	}

	fields := []zap.Field{
		zap.String("command", command),
		zap.String("key", ve.Field),
	}
	switch {
	case rcerrors.IsInvalidValue(err):
		fields = append(fields, zap.Any("value", ve.Value))
		logger.Error(ve.Message, fields...)
	case rcerrors.IsMissingKey(err):
		logger.Warn(ve.Message, fields...)
	default:
		logger.Error(ve.Message, fields...)
	}
}
