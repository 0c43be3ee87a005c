package registry

import (
	"context"
	"sort"

	"github.com/markitondemand/go-testaccounts/pkg/domain"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
)

// Dependencies wire the logger, seed state, and initial broadcasters.
type Dependencies struct {
	// DefaultEnvironment substitutes for an empty environment argument.
	// Falls back to domain.DefaultEnvironment when blank.
	DefaultEnvironment domain.Environment
	// Seed pre-populates the environment map before the first operation.
	Seed map[domain.Environment][]domain.Account
	// Broadcasters forms the initial notification sequence, in order.
	Broadcasters []broadcaster.Broadcaster
	Logger       logger.Logger
}

// Service owns the environment→accounts map and the broadcaster sequence.
//
// The service is not safe for concurrent use. It targets a single logical
// caller (a UI thread in the typical host); wrap it in a mutex or confine it
// to one goroutine if it must be shared.
type Service struct {
	defaultEnv   domain.Environment
	sets         map[domain.Environment]map[domain.Account]struct{}
	broadcasters []broadcaster.Broadcaster
	logger       logger.Logger
}

// NewService constructs the registry service.
func NewService(deps Dependencies) *Service {
	if deps.DefaultEnvironment == "" {
		deps.DefaultEnvironment = domain.DefaultEnvironment
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}
	s := &Service{
		defaultEnv:   deps.DefaultEnvironment,
		sets:         make(map[domain.Environment]map[domain.Account]struct{}),
		broadcasters: append([]broadcaster.Broadcaster(nil), deps.Broadcasters...),
		logger:       deps.Logger,
	}
	for env, accounts := range deps.Seed {
		for _, account := range accounts {
			s.Register(account, env)
		}
	}
	return s
}

// Register inserts the account into the environment's set, creating the set
// on demand. Registering an account twice is a no-op.
func (s *Service) Register(account domain.Account, env domain.Environment) {
	env = s.resolve(env)
	set, ok := s.sets[env]
	if !ok {
		set = make(map[domain.Account]struct{})
		s.sets[env] = set
	}
	if _, exists := set[account]; exists {
		return
	}
	set[account] = struct{}{}
	s.logger.Debug("account registered",
		logger.Field{Key: "environment", Value: env},
		logger.Field{Key: "account", Value: account.Label()},
	)
}

// Deregister removes the account from the environment's set. Unknown
// environments and non-member accounts are silent no-ops. An environment
// whose set empties is removed entirely; no empty sets persist.
func (s *Service) Deregister(account domain.Account, env domain.Environment) {
	env = s.resolve(env)
	set, ok := s.sets[env]
	if !ok {
		return
	}
	if _, exists := set[account]; !exists {
		return
	}
	delete(set, account)
	if len(set) == 0 {
		delete(s.sets, env)
	}
	s.logger.Debug("account deregistered",
		logger.Field{Key: "environment", Value: env},
		logger.Field{Key: "account", Value: account.Label()},
	)
}

// Accounts returns a snapshot of the environment's accounts, sorted by
// username, and false when the environment has none registered. Mutating the
// returned slice does not affect registry state.
func (s *Service) Accounts(env domain.Environment) ([]domain.Account, bool) {
	set, ok := s.sets[s.resolve(env)]
	if !ok {
		return nil, false
	}
	accounts := make([]domain.Account, 0, len(set))
	for account := range set {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Username != accounts[j].Username {
			return accounts[i].Username < accounts[j].Username
		}
		return accounts[i].DisplayName < accounts[j].DisplayName
	})
	return accounts, true
}

// Environments returns the currently registered environment names, sorted.
func (s *Service) Environments() []domain.Environment {
	envs := make([]domain.Environment, 0, len(s.sets))
	for env := range s.sets {
		envs = append(envs, env)
	}
	sort.Strings(envs)
	return envs
}

// AddBroadcaster appends a broadcaster to the notification sequence. There is
// no deduplication; a broadcaster added twice is notified twice.
func (s *Service) AddBroadcaster(b broadcaster.Broadcaster) {
	if b == nil {
		return
	}
	s.broadcasters = append(s.broadcasters, b)
}

// Broadcasters reports the current length of the notification sequence.
func (s *Service) Broadcasters() int {
	return len(s.broadcasters)
}

// Select confirms the account is a registered member of the environment and,
// if so, notifies every broadcaster in registration order on the caller's
// stack. Selecting an unknown environment or non-member account is a silent
// no-op. Every broadcaster runs even when an earlier one fails; the first
// error observed is returned.
func (s *Service) Select(ctx context.Context, account domain.Account, env domain.Environment) error {
	env = s.resolve(env)
	set, ok := s.sets[env]
	if !ok {
		return nil
	}
	if _, member := set[account]; !member {
		return nil
	}
	sel := broadcaster.Selection{Account: account, Environment: env}
	var firstErr error
	for _, b := range s.broadcasters {
		if err := b.Notify(ctx, sel); err != nil {
			s.logger.Error("broadcaster notify failed",
				logger.Field{Key: "environment", Value: env},
				logger.Field{Key: "account", Value: account.Label()},
				logger.Field{Key: "error", Value: err},
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	s.logger.Info("account selected",
		logger.Field{Key: "environment", Value: env},
		logger.Field{Key: "account", Value: account.Label()},
	)
	return firstErr
}

func (s *Service) resolve(env domain.Environment) domain.Environment {
	if env == "" {
		return s.defaultEnv
	}
	return env
}
