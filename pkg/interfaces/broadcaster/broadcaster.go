package broadcaster

import (
	"context"

	"github.com/markitondemand/go-testaccounts/pkg/domain"
)

// Selection carries the account a user picked and the environment it was
// registered under.
type Selection struct {
	Account     domain.Account
	Environment domain.Environment
}

// Broadcaster receives selection events. Implementations push them to
// whatever notification surface the host app uses (event emitter, UI
// callback, log sink).
type Broadcaster interface {
	Notify(ctx context.Context, sel Selection) error
}

// Nop broadcaster discards selections.
type Nop struct{}

var _ Broadcaster = (*Nop)(nil)

func (n *Nop) Notify(ctx context.Context, sel Selection) error { return nil }
