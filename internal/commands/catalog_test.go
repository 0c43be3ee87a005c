package commands

import (
	"context"
	"testing"

	"github.com/markitondemand/go-testaccounts/internal/registry"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
)

func TestCatalogCommands(t *testing.T) {
	ctx := context.Background()
	var selected []broadcaster.Selection
	svc := registry.NewService(registry.Dependencies{
		Broadcasters: []broadcaster.Broadcaster{
			broadcaster.Func(func(ctx context.Context, sel broadcaster.Selection) error {
				selected = append(selected, sel)
				return nil
			}),
		},
	})

	cat, err := NewCatalog(Dependencies{Registry: svc})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	if err := cat.RegisterAccount.Execute(ctx, RegisterAccount{
		Environment: "QA",
		Username:    "qa-bot",
		Password:    "hunter2",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	accounts, ok := svc.Accounts("QA")
	if !ok || len(accounts) != 1 {
		t.Fatalf("expected registered account, got %+v ok=%v", accounts, ok)
	}

	if err := cat.SelectAccount.Execute(ctx, SelectAccount{
		Environment: "QA",
		Username:    "qa-bot",
		Password:    "hunter2",
	}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(selected) != 1 || selected[0].Environment != "QA" {
		t.Fatalf("expected selection broadcast, got %+v", selected)
	}

	if err := cat.DeregisterAccount.Execute(ctx, DeregisterAccount{
		Environment: "QA",
		Username:    "qa-bot",
		Password:    "hunter2",
	}); err != nil {
		t.Fatalf("deregister: %v", err)
	}
	if _, ok := svc.Accounts("QA"); ok {
		t.Fatalf("expected QA absent after deregistration")
	}
}

func TestCatalogRequiresRegistry(t *testing.T) {
	if _, err := NewCatalog(Dependencies{}); err == nil {
		t.Fatalf("expected error for missing registry")
	}
}

func TestCommandsRejectBlankUsername(t *testing.T) {
	svc := registry.NewService(registry.Dependencies{})
	cat, err := NewCatalog(Dependencies{Registry: svc})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	ctx := context.Background()
	if err := cat.RegisterAccount.Execute(ctx, RegisterAccount{Environment: "QA"}); err == nil {
		t.Fatalf("expected validation error for blank username")
	}
	if err := cat.SelectAccount.Execute(ctx, SelectAccount{Username: "   "}); err == nil {
		t.Fatalf("expected validation error for blank username")
	}
	if envs := svc.Environments(); len(envs) != 0 {
		t.Fatalf("expected no state change, got %v", envs)
	}
}

func TestDefaultEnvironmentFlowsThroughCommands(t *testing.T) {
	svc := registry.NewService(registry.Dependencies{})
	cat, err := NewCatalog(Dependencies{Registry: svc})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	if err := cat.RegisterAccount.Execute(context.Background(), RegisterAccount{Username: "qa-bot"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := svc.Accounts(domain.DefaultEnvironment); !ok {
		t.Fatalf("expected account under %q", domain.DefaultEnvironment)
	}
}
