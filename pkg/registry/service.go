package registry

import (
	"context"

	internalregistry "github.com/markitondemand/go-testaccounts/internal/registry"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
)

// Dependencies re-exports the internal wiring struct for callers.
type Dependencies = internalregistry.Dependencies

// Service exposes the account registry: the environment→accounts map plus
// the selection broadcast sequence. See the internal service for the
// single-caller concurrency contract.
type Service struct {
	internal *internalregistry.Service
}

// New constructs the public facade.
func New(deps Dependencies) *Service {
	return &Service{internal: internalregistry.NewService(deps)}
}

// Register adds the account under the environment. An empty environment
// means the configured default.
func (s *Service) Register(account domain.Account, env domain.Environment) {
	if s == nil || s.internal == nil {
		return
	}
	s.internal.Register(account, env)
}

// Deregister removes the account from the environment; a silent no-op when
// either is absent.
func (s *Service) Deregister(account domain.Account, env domain.Environment) {
	if s == nil || s.internal == nil {
		return
	}
	s.internal.Deregister(account, env)
}

// Accounts returns a snapshot of the environment's accounts and whether the
// environment has any registered.
func (s *Service) Accounts(env domain.Environment) ([]domain.Account, bool) {
	if s == nil || s.internal == nil {
		return nil, false
	}
	return s.internal.Accounts(env)
}

// Environments lists the environments that currently hold accounts.
func (s *Service) Environments() []domain.Environment {
	if s == nil || s.internal == nil {
		return nil
	}
	return s.internal.Environments()
}

// AddBroadcaster appends a broadcaster to the notification sequence.
func (s *Service) AddBroadcaster(b broadcaster.Broadcaster) {
	if s == nil || s.internal == nil {
		return
	}
	s.internal.AddBroadcaster(b)
}

// Select notifies every broadcaster about the account if it is registered
// under the environment; otherwise a silent no-op.
func (s *Service) Select(ctx context.Context, account domain.Account, env domain.Environment) error {
	if s == nil || s.internal == nil {
		return nil
	}
	return s.internal.Select(ctx, account, env)
}
