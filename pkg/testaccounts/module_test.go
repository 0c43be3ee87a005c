package testaccounts

import (
	"context"
	"testing"

	"github.com/markitondemand/go-testaccounts/pkg/broadcasters/emitter"
	"github.com/markitondemand/go-testaccounts/pkg/config"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
)

func TestModuleInstallsDefaultBroadcaster(t *testing.T) {
	mod, err := NewModule(ModuleOptions{})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	hub := mod.Emitter()
	if hub == nil {
		t.Fatalf("expected default emitter installed")
	}

	var got []emitter.Notification
	hub.Subscribe(emitter.TopicAccountSelected, func(n emitter.Notification) {
		got = append(got, n)
	})

	account := domain.Account{Username: "qa-bot", Password: "hunter2"}
	mod.Registry().Register(account, "")
	if err := mod.Registry().Select(context.Background(), account, ""); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected selection notification, got %d", len(got))
	}
	if got[0].Selection.Environment != domain.DefaultEnvironment {
		t.Fatalf("expected default environment, got %q", got[0].Selection.Environment)
	}
}

func TestModuleWithoutDefaultBroadcaster(t *testing.T) {
	calls := 0
	mod, err := NewModule(ModuleOptions{
		Config: config.Config{
			Registry: config.RegistryConfig{
				DefaultEnvironment:        "Test",
				DisableDefaultBroadcaster: true,
			},
		},
		Broadcasters: []broadcaster.Broadcaster{
			broadcaster.Func(func(ctx context.Context, sel broadcaster.Selection) error {
				calls++
				return nil
			}),
		},
	})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	if mod.Emitter() != nil {
		t.Fatalf("expected no default emitter")
	}

	account := domain.Account{Username: "qa-bot"}
	mod.Registry().Register(account, "Staging")
	if err := mod.Registry().Select(context.Background(), account, "Staging"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected caller broadcaster notified once, got %d", calls)
	}
}

func TestModulePartialConfigFallsBackToDefaults(t *testing.T) {
	mod, err := NewModule(ModuleOptions{
		Config: config.Config{
			Registry: config.RegistryConfig{DisableDefaultBroadcaster: true},
		},
	})
	if err != nil {
		t.Fatalf("expected partial config to fall back to defaults, got %v", err)
	}
	if mod.Emitter() != nil {
		t.Fatalf("expected opt-out honored")
	}
	if got := mod.Config().Registry.DefaultEnvironment; got != string(domain.DefaultEnvironment) {
		t.Fatalf("expected default environment %q, got %q", domain.DefaultEnvironment, got)
	}

	account := domain.Account{Username: "qa-bot"}
	mod.Registry().Register(account, "")
	if _, ok := mod.Registry().Accounts(domain.DefaultEnvironment); !ok {
		t.Fatalf("expected omitted environment to land in %q", domain.DefaultEnvironment)
	}
}

func TestModuleSeedsFromConfig(t *testing.T) {
	mod, err := NewModule(ModuleOptions{
		Config: config.Config{
			Registry: config.RegistryConfig{DefaultEnvironment: "Test"},
			Seed: map[string][]config.SeedAccount{
				"Staging": {{Username: "beta", Password: "pw"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	accounts, ok := mod.Registry().Accounts("Staging")
	if !ok || len(accounts) != 1 || accounts[0].Username != "beta" {
		t.Fatalf("expected seeded account, got %+v ok=%v", accounts, ok)
	}
}

func TestModuleCommandsRoundTrip(t *testing.T) {
	mod, err := NewModule(ModuleOptions{})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	ctx := context.Background()
	if err := mod.Commands().RegisterAccount.Execute(ctx, RegisterAccount{
		Environment: "QA",
		Username:    "qa-bot",
	}); err != nil {
		t.Fatalf("register command: %v", err)
	}
	if _, ok := mod.Registry().Accounts("QA"); !ok {
		t.Fatalf("expected account registered via module commands")
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	_, err := NewModule(ModuleOptions{
		Config: config.Config{
			Registry: config.RegistryConfig{DefaultEnvironment: "   "},
		},
	})
	if err == nil {
		t.Fatalf("expected config validation error")
	}
}

func TestNilModuleAccessors(t *testing.T) {
	var mod *Module
	if mod.Registry() != nil || mod.Emitter() != nil || mod.Commands() != nil {
		t.Fatalf("expected nil accessors from nil module")
	}
}
