package main

import (
	"context"
	"fmt"
	"log"

	"github.com/markitondemand/go-testaccounts/pkg/broadcasters/console"
	"github.com/markitondemand/go-testaccounts/pkg/broadcasters/emitter"
	"github.com/markitondemand/go-testaccounts/pkg/config"
	"github.com/markitondemand/go-testaccounts/pkg/domain"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
	"github.com/markitondemand/go-testaccounts/pkg/testaccounts"
)

func main() {
	lgr := logger.New()

	mod, err := testaccounts.NewModule(testaccounts.ModuleOptions{
		Config: config.Config{
			Registry: config.RegistryConfig{DefaultEnvironment: "Test"},
			Seed: map[string][]config.SeedAccount{
				"Test": {
					{Username: "alpha@example.com", Password: "alpha-pass", DisplayName: "Alpha"},
					{Username: "beta@example.com", Password: "beta-pass", DisplayName: "Beta"},
				},
				"Staging": {
					{Username: "stage@example.com", Password: "stage-pass", DisplayName: "Stage"},
				},
			},
		},
		Logger: lgr,
	})
	if err != nil {
		log.Fatalf("assemble module: %v", err)
	}

	reg := mod.Registry()
	reg.AddBroadcaster(console.New(lgr))

	// A host UI would subscribe here to auto-fill its login form.
	mod.Emitter().Subscribe(emitter.TopicAccountSelected, func(n emitter.Notification) {
		fmt.Printf("fill login form: %s (%s) in %s\n",
			n.Selection.Account.Label(), n.Selection.Account.Username, n.Selection.Environment)
	})

	for _, env := range reg.Environments() {
		accounts, _ := reg.Accounts(env)
		fmt.Printf("%s:\n", env)
		for _, account := range accounts {
			fmt.Printf("  - %s\n", account.Label())
		}
	}

	picked := domain.Account{Username: "alpha@example.com", Password: "alpha-pass", DisplayName: "Alpha"}
	if err := reg.Select(context.Background(), picked, ""); err != nil {
		log.Fatalf("select: %v", err)
	}
}
