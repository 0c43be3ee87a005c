// Package emitter provides the default in-process notification center. The
// registry publishes account selections to it; host code subscribes handlers
// per topic, typically to auto-fill a login form.
package emitter

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/broadcaster"
	"github.com/markitondemand/go-testaccounts/pkg/interfaces/logger"
)

// TopicAccountSelected is published whenever a registered account is selected.
const TopicAccountSelected = "accounts.selected"

// Notification is the payload delivered to subscribed handlers.
type Notification struct {
	ID        uuid.UUID
	Topic     string
	Selection broadcaster.Selection
	At        time.Time
}

// Handler consumes published notifications.
type Handler func(Notification)

// Emitter is a topic-keyed, synchronous publish/subscribe hub. Unlike the
// registry itself, the emitter guards its subscriber lists so host code may
// subscribe from any goroutine.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]Handler
	logger   logger.Logger
}

var _ broadcaster.Broadcaster = (*Emitter)(nil)

// New constructs an emitter.
func New(l logger.Logger) *Emitter {
	if l == nil {
		l = &logger.Nop{}
	}
	return &Emitter{
		handlers: make(map[string][]Handler),
		logger:   l,
	}
}

// Subscribe registers a handler for the topic. Handlers run synchronously in
// subscription order on the publisher's goroutine.
func (e *Emitter) Subscribe(topic string, h Handler) {
	if h == nil {
		return
	}
	e.mu.Lock()
	e.handlers[topic] = append(e.handlers[topic], h)
	e.mu.Unlock()
}

// Publish delivers the selection to every handler subscribed to the topic.
func (e *Emitter) Publish(topic string, sel broadcaster.Selection) {
	e.mu.Lock()
	subscribed := append([]Handler(nil), e.handlers[topic]...)
	e.mu.Unlock()

	if len(subscribed) == 0 {
		return
	}
	note := Notification{
		ID:        uuid.New(),
		Topic:     topic,
		Selection: sel,
		At:        time.Now().UTC(),
	}
	for _, h := range subscribed {
		h(note)
	}
	e.logger.Debug("notification published",
		logger.Field{Key: "topic", Value: topic},
		logger.Field{Key: "id", Value: note.ID},
		logger.Field{Key: "handlers", Value: len(subscribed)},
	)
}

// Notify implements broadcaster.Broadcaster by publishing the selection on
// the TopicAccountSelected topic.
func (e *Emitter) Notify(ctx context.Context, sel broadcaster.Selection) error {
	e.Publish(TopicAccountSelected, sel)
	return nil
}
