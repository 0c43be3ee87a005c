package commands

import (
	"errors"

	command "github.com/goliatone/go-command"
	internalcommands "github.com/markitondemand/go-testaccounts/internal/commands"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
	"github.com/markitondemand/go-testaccounts/pkg/registry"
)

// Re-export request types so consumers need not import internal packages.
type (
	RegisterAccount   = internalcommands.RegisterAccount
	DeregisterAccount = internalcommands.DeregisterAccount
	SelectAccount     = internalcommands.SelectAccount
)

var errRegistryRequired = errors.New("commands: registry service is required")

// Registry exposes go-command compatible handlers backed by the account
// registry.
type Registry struct {
	Catalog           *internalcommands.Catalog
	RegisterAccount   command.Commander[RegisterAccount]
	DeregisterAccount command.Commander[DeregisterAccount]
	SelectAccount     command.Commander[SelectAccount]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Registry *registry.Service
	Logger   logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	if deps.Registry == nil {
		return nil, errRegistryRequired
	}
	catalog, err := internalcommands.NewCatalog(internalcommands.Dependencies{
		Registry: deps.Registry,
		Logger:   deps.Logger,
	})
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:           catalog,
		RegisterAccount:   catalog.RegisterAccount,
		DeregisterAccount: catalog.DeregisterAccount,
		SelectAccount:     catalog.SelectAccount,
	}, nil
}

// Commanders returns every handler so callers can register them with
// go-command registries.
func (r *Registry) Commanders() []any {
	if r == nil {
		return nil
	}
	return []any{
		r.RegisterAccount,
		r.DeregisterAccount,
		r.SelectAccount,
	}
}
