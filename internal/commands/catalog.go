package commands

import (
	"context"
	"errors"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	RegisterAccount   command.Commander[RegisterAccount]
	DeregisterAccount command.Commander[DeregisterAccount]
	SelectAccount     command.Commander[SelectAccount]
}

type registryService interface {
	Register(account domain.Account, env domain.Environment)
	Deregister(account domain.Account, env domain.Environment)
	Select(ctx context.Context, account domain.Account, env domain.Environment) error
}

// Dependencies wire the registry into the command catalog.
type Dependencies struct {
	Registry registryService
	Logger   logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Registry == nil {
		return nil, errors.New("commands: registry service is required")
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	return &Catalog{
		RegisterAccount:   registerAccountCommand{registry: deps.Registry},
		DeregisterAccount: deregisterAccountCommand{registry: deps.Registry},
		SelectAccount:     selectAccountCommand{registry: deps.Registry},
	}, nil
}

// RegisterAccount is the payload for registering credentials under an
// environment. An empty environment targets the registry default.
type RegisterAccount struct {
	Environment string `json:"environment"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type registerAccountCommand struct {
	registry registryService
}

func (c registerAccountCommand) Execute(ctx context.Context, msg RegisterAccount) error {
	account, err := accountFromPayload(msg.Username, msg.Password, msg.DisplayName)
	if err != nil {
		return err
	}
	c.registry.Register(account, domain.Environment(msg.Environment))
	return nil
}

// DeregisterAccount removes credentials from an environment.
type DeregisterAccount struct {
	Environment string `json:"environment"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type deregisterAccountCommand struct {
	registry registryService
}

func (c deregisterAccountCommand) Execute(ctx context.Context, msg DeregisterAccount) error {
	account, err := accountFromPayload(msg.Username, msg.Password, msg.DisplayName)
	if err != nil {
		return err
	}
	c.registry.Deregister(account, domain.Environment(msg.Environment))
	return nil
}

// SelectAccount confirms a registered account is in use, triggering
// broadcaster notification.
type SelectAccount struct {
	Environment string `json:"environment"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type selectAccountCommand struct {
	registry registryService
}

func (c selectAccountCommand) Execute(ctx context.Context, msg SelectAccount) error {
	account, err := accountFromPayload(msg.Username, msg.Password, msg.DisplayName)
	if err != nil {
		return err
	}
	return c.registry.Select(ctx, account, domain.Environment(msg.Environment))
}

func accountFromPayload(username, password, displayName string) (domain.Account, error) {
	if strings.TrimSpace(username) == "" {
		return domain.Account{}, errors.New("commands: account username is required")
	}
	return domain.Account{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	}, nil
}
