package di

import (
	"github.com/markitondemand/go-testaccounts/pkg/broadcasters/emitter"
	"github.com/markitondemand/go-testaccounts/pkg/commands"
	"github.com/markitondemand/go-testaccounts/pkg/config"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
	"github.com/markitondemand/go-testaccounts/pkg/registry"
)

// Options configure the DI container.
type Options struct {
	Config config.Config
	Logger logger.Logger
	// Broadcasters are appended after the default emitter (when installed),
	// preserving the order callers hand them in.
	Broadcasters []broadcaster.Broadcaster
}

// Container wires config, registry, default broadcaster, and commands.
type Container struct {
	Config   config.Config
	Registry *registry.Service
	// Emitter is the default notification center; nil when disabled via
	// config.
	Emitter  *emitter.Emitter
	Commands *commands.Registry
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	cfg := opts.Config.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lgr := opts.Logger
	if lgr == nil {
		lgr = &logger.Nop{}
	}

	var hub *emitter.Emitter
	chain := make([]broadcaster.Broadcaster, 0, len(opts.Broadcasters)+1)
	if !cfg.Registry.DisableDefaultBroadcaster {
		hub = emitter.New(lgr)
		chain = append(chain, hub)
	}
	chain = append(chain, opts.Broadcasters...)

	registrySvc := registry.New(registry.Dependencies{
		DefaultEnvironment: cfg.Registry.DefaultEnvironment,
		Seed:               cfg.SeedAccounts(),
		Broadcasters:       chain,
		Logger:             lgr,
	})

	cmdRegistry, err := commands.New(commands.Dependencies{
		Registry: registrySvc,
		Logger:   lgr,
	})
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:   cfg,
		Registry: registrySvc,
		Emitter:  hub,
		Commands: cmdRegistry,
	}, nil
}
