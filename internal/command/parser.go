package command

import (
	"strings"

	"github.com/kapu/appsflyer-remote-command-go/internal/constants"
	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/internal/util"
)

// SplitCommands reads the command_name field and returns its comma-separated
// tokens trimmed and lower-cased, in their original order. Blank tokens are
// kept; the dispatcher skips them.
func SplitCommands(p payload.Payload) []string {
	raw := p.OptString(constants.Commands.Key, "")
	parts := strings.Split(raw, constants.Commands.Separator)

	commands := make([]string, 0, len(parts))
	for _, part := range parts {
		commands = append(commands, util.Normalize(part))
	}
	return commands
}
