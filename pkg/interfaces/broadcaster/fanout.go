package broadcaster

import "context"

// Func adapts a function to the Broadcaster interface, the lightest way for
// a host UI to hook selections into a login form callback.
type Func func(ctx context.Context, sel Selection) error

// Notify satisfies the Broadcaster interface.
func (f Func) Notify(ctx context.Context, sel Selection) error {
	if f == nil {
		return nil
	}
	return f(ctx, sel)
}

// Fanout bundles several broadcasters behind a single registry slot, for
// hosts that want one AddBroadcaster call to feed multiple sinks.
type Fanout struct {
	targets []Broadcaster
}

// NewFanout assembles a broadcaster that multicasts to the provided targets.
func NewFanout(targets ...Broadcaster) *Fanout {
	filtered := make([]Broadcaster, 0, len(targets))
	for _, target := range targets {
		if target != nil {
			filtered = append(filtered, target)
		}
	}
	return &Fanout{targets: filtered}
}

var _ Broadcaster = (*Fanout)(nil)

// Notify delivers the selection to each target, returning the first error
// observed. Every target runs regardless of earlier failures.
func (f *Fanout) Notify(ctx context.Context, sel Selection) error {
	var firstErr error
	for _, target := range f.targets {
		if err := target.Notify(ctx, sel); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
