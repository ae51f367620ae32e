package command

import (
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"go.uber.org/zap"
)

// Command is one control command. Execute returns a *errors.ValidationError
// when the payload cannot satisfy the command's contract; in that case the
// tracker has not been called.
type Command interface {
	Name() string
	Execute(p payload.Payload) error
}

type Dependencies struct {
	Tracker domain.Tracker
	Logger  *zap.Logger
}

type commandFunc struct {
	name domain.CommandType
	fn   func(payload.Payload) error
}

func newCommand(name domain.CommandType, fn func(payload.Payload) error) Command {
	return &commandFunc{name: name, fn: fn}
}

func (c *commandFunc) Name() string {
	return c.name.String()
}

func (c *commandFunc) Execute(p payload.Payload) error {
	return c.fn(p)
}
