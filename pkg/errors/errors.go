package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeRemoteCommand = "REMOTE_COMMAND_ERROR"
	CodeMissingKey    = "MISSING_KEY"
	CodeInvalidValue  = "INVALID_VALUE"
	CodeDecode        = "DECODE_ERROR"
	CodeBridge        = "BRIDGE_ERROR"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrNilPayload     = errors.New("payload is nil")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNilTracker     = errors.New("tracker is nil")
)

type RemoteCommandError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *RemoteCommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RemoteCommandError) Unwrap() error {
	return e.Cause
}

func NewRemoteCommandError(message, code string, context map[string]any) *RemoteCommandError {
	return &RemoteCommandError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *RemoteCommandError) WithCause(cause error) *RemoteCommandError {
	e.Cause = cause
	return e
}

// ValidationError reports a payload key that a command could not use. It is
// logged by the dispatcher and never returned to the host.
type ValidationError struct {
	*RemoteCommandError
	Command string
	Field   string
	Value   any
}

// NewMissingKeyError is used when a required key is absent, empty or of the
// wrong type.
func NewMissingKeyError(command, field string) *ValidationError {
	return &ValidationError{
		RemoteCommandError: &RemoteCommandError{
			Message: fmt.Sprintf("%s is a required key", field),
			Code:    CodeMissingKey,
			Context: map[string]any{
				"command": command,
				"field":   field,
			},
		},
		Command: command,
		Field:   field,
	}
}

// NewInvalidValueError is used when a key is present but its value is outside
// the accepted set or range.
func NewInvalidValueError(command, field string, value any, reason string) *ValidationError {
	return &ValidationError{
		RemoteCommandError: &RemoteCommandError{
			Message: fmt.Sprintf("invalid %s: %s", field, reason),
			Code:    CodeInvalidValue,
			Context: map[string]any{
				"command": command,
				"field":   field,
				"value":   value,
			},
		},
		Command: command,
		Field:   field,
		Value:   value,
	}
}

// IsMissingKey reports whether err is a ValidationError for an absent key.
func IsMissingKey(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Code == CodeMissingKey
}

// IsInvalidValue reports whether err is a ValidationError for a rejected value.
func IsInvalidValue(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Code == CodeInvalidValue
}

type DecodeError struct {
	*RemoteCommandError
	Source string
}

func NewDecodeError(message, source string, cause error) *DecodeError {
	return &DecodeError{
		RemoteCommandError: &RemoteCommandError{
			Message: message,
			Code:    CodeDecode,
			Context: map[string]any{
				"source": source,
			},
			Cause: cause,
		},
		Source: source,
	}
}

type BridgeError struct {
	*RemoteCommandError
	Operation string
	Queue     string
}

func NewBridgeError(message, operation, queue string, cause error) *BridgeError {
	return &BridgeError{
		RemoteCommandError: &RemoteCommandError{
			Message: message,
			Code:    CodeBridge,
			Context: map[string]any{
				"operation": operation,
				"queue":     queue,
			},
			Cause: cause,
		},
		Operation: operation,
		Queue:     queue,
	}
}
