// Package testaccounts assembles the account registry module: a small
// in-memory map of named environments to credential sets plus a selection
// broadcast sequence, intended to back developer-facing account pickers.
package testaccounts

import (
	"github.com/markitondemand/go-testaccounts/internal/di"
	"github.com/markitondemand/go-testaccounts/pkg/broadcasters/emitter"
	"github.com/markitondemand/go-testaccounts/pkg/commands"
	"github.com/markitondemand/go-testaccounts/pkg/config"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
	"github.com/markitondemand/go-testaccounts/pkg/registry"
)

// Re-export command payloads for callers.
type (
	RegisterAccount   = commands.RegisterAccount
	DeregisterAccount = commands.DeregisterAccount
	SelectAccount     = commands.SelectAccount
)

// ModuleOptions configure the module facade.
type ModuleOptions struct {
	Config       config.Config
	Logger       logger.Logger
	Broadcasters []broadcaster.Broadcaster
}

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles the registry, default broadcaster, and commands.
func NewModule(opts ModuleOptions) (*Module, error) {
	container, err := di.New(di.Options{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Broadcasters: opts.Broadcasters,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Registry returns the account registry service.
func (m *Module) Registry() *registry.Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Registry
}

// Emitter returns the default notification center, or nil when the module
// was configured without one.
func (m *Module) Emitter() *emitter.Emitter {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Emitter
}

// Commands returns the go-command registry.
func (m *Module) Commands() *commands.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands
}

// Config returns the effective module configuration.
func (m *Module) Config() config.Config {
	if m == nil || m.container == nil {
		return config.Config{}
	}
	return m.container.Config
}
