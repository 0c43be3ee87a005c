package console

import (
	"context"
	"fmt"

	"github.com/markitondemand/go-testaccounts/pkg/credentials"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
)

// Broadcaster writes selections to the configured logger for debugging.
// Passwords are masked before they reach the log line.
type Broadcaster struct {
	name   string
	logger logger.Logger
	opts   Options
}

type Option func(*Broadcaster)

// Options tweak console output.
type Options struct {
	Structured bool // when true, emit structured log fields instead of a formatted string
}

// WithName overrides the broadcaster name (defaults to "console").
func WithName(name string) Option {
	return func(b *Broadcaster) {
		if name != "" {
			b.name = name
		}
	}
}

// WithStructured enables structured logging mode.
func WithStructured(enabled bool) Option {
	return func(b *Broadcaster) {
		b.opts.Structured = enabled
	}
}

var _ broadcaster.Broadcaster = (*Broadcaster)(nil)

// New constructs a console broadcaster.
func New(l logger.Logger, opts ...Option) *Broadcaster {
	if l == nil {
		l = &logger.Nop{}
	}
	b := &Broadcaster{
		name:   "console",
		logger: l,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Name returns the broadcaster name.
func (b *Broadcaster) Name() string {
	return b.name
}

// Notify logs the selection with a masked credential view.
func (b *Broadcaster) Notify(ctx context.Context, sel broadcaster.Selection) error {
	masked := credentials.MaskAccount(sel.Account)

	if b.opts.Structured {
		b.logger.Info("account selection",
			logger.Field{Key: "broadcaster", Value: b.name},
			logger.Field{Key: "environment", Value: sel.Environment},
			logger.Field{Key: "account", Value: masked},
		)
		return nil
	}

	b.logger.Info(fmt.Sprintf("[%s] environment=%s account=%s password=%s",
		b.name, sel.Environment, sel.Account.Label(), masked["password"]))
	return nil
}
