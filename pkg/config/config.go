package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-config/cfgx"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
)

// Config captures module-level configuration knobs.
type Config struct {
	Registry RegistryConfig           `mapstructure:"registry" json:"registry"`
	Seed     map[string][]SeedAccount `mapstructure:"seed" json:"seed"`
}

// RegistryConfig controls registry defaults and broadcaster wiring.
type RegistryConfig struct {
	// DefaultEnvironment substitutes for an omitted environment argument.
	DefaultEnvironment string `mapstructure:"default_environment" json:"default_environment"`
	// DisableDefaultBroadcaster skips installing the in-process emitter
	// broadcaster at construction. Off by default so hosts get the
	// notification-center wiring unless they opt out.
	DisableDefaultBroadcaster bool `mapstructure:"disable_default_broadcaster" json:"disable_default_broadcaster"`
}

// SeedAccount describes one pre-registered credential set.
type SeedAccount struct {
	Username    string `mapstructure:"username" json:"username"`
	Password    string `mapstructure:"password" json:"password"`
	DisplayName string `mapstructure:"display_name" json:"display_name"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Registry: RegistryConfig{
			DefaultEnvironment: string(domain.DefaultEnvironment),
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Registry.DefaultEnvironment) == "" {
		return errors.New("registry.default_environment is required")
	}
	for env, accounts := range c.Seed {
		if strings.TrimSpace(env) == "" {
			return errors.New("seed environment names must not be blank")
		}
		for i, account := range accounts {
			if strings.TrimSpace(account.Username) == "" {
				return fmt.Errorf("seed.%s[%d].username is required", env, i)
			}
		}
	}
	return nil
}

// SeedAccounts converts the seed section into domain values keyed by
// environment.
func (c Config) SeedAccounts() map[domain.Environment][]domain.Account {
	if len(c.Seed) == 0 {
		return nil
	}
	seed := make(map[domain.Environment][]domain.Account, len(c.Seed))
	for env, accounts := range c.Seed {
		converted := make([]domain.Account, 0, len(accounts))
		for _, account := range accounts {
			converted = append(converted, domain.Account{
				Username:    account.Username,
				Password:    account.Password,
				DisplayName: account.DisplayName,
			})
		}
		seed[domain.Environment(env)] = converted
	}
	return seed
}

// Load decodes arbitrary input (struct, map) using cfgx helpers. While
// cfgx.Build still returns zero values, we fallback to a lightweight decoder
// to keep smoke tests meaningful.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (preprocessors, decode hooks, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

// Normalize fills missing fields with their defaults. Partially-specified
// configs (say, only the broadcaster opt-out set) stay valid this way.
func (c Config) Normalize() Config {
	defaults := Defaults()

	if c.Registry.DefaultEnvironment == "" {
		c.Registry.DefaultEnvironment = defaults.Registry.DefaultEnvironment
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
