package command

import (
	"fmt"
	"sync"

	"github.com/kapu/appsflyer-remote-command-go/internal/payload"
	"github.com/kapu/appsflyer-remote-command-go/internal/util"
	rcerrors "github.com/kapu/appsflyer-remote-command-go/pkg/errors"
)

// Registry stores command handlers keyed by their canonical names.
type Registry struct {
	mu        sync.RWMutex
	handlers  map[string]Command
	aliasKeys map[string]string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:  make(map[string]Command),
		aliasKeys: make(map[string]string),
	}
}

// Register adds a command handler to the registry. The handler name is stored
// in lowercase form, and a separator-free alias is recorded so that
// "track_location" finds "tracklocation".
func (r *Registry) Register(handler Command) {
	if handler == nil {
		return
	}

	name := util.Normalize(handler.Name())
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = handler
	if alias := util.NormalizeKey(name); alias != "" {
		r.aliasKeys[alias] = name
	}
}

// Execute runs the handler registered for the provided key. Keys are compared in
// lowercase to maintain parity with Register behaviour.
func (r *Registry) Execute(key string, p payload.Payload) error {
	if r == nil {
		return fmt.Errorf("command registry is nil")
	}

	handler := r.getHandler(key)
	if handler == nil {
		return fmt.Errorf("%w: %s", rcerrors.ErrUnknownCommand, key)
	}

	return handler.Execute(p)
}

// Count returns the number of registered command handlers.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

func (r *Registry) getHandler(key string) Command {
	name := util.Normalize(key)
	if name == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if handler, ok := r.handlers[name]; ok {
		return handler
	}
	if canonical, ok := r.aliasKeys[util.NormalizeKey(name)]; ok {
		return r.handlers[canonical]
	}
	return nil
}
