package logger

import (
	"sync"
	"testing"
)

func TestLogDoesNotWriteIntoSharedBacking(t *testing.T) {
	backing := make([]Field, 1, 2)
	backing[0] = Field{Key: "env", Value: "QA"}
	l := &BasicLogger{mu: &sync.Mutex{}, fields: backing}

	l.Info("account selected", Field{Key: "account", Value: "qa-bot"})

	spare := backing[:2][1]
	if spare != (Field{}) {
		t.Fatalf("expected spare capacity untouched, got %+v", spare)
	}
}

func TestWithCopiesParentFields(t *testing.T) {
	parent := New().With(Field{Key: "env", Value: "QA"}).(*BasicLogger)
	first := parent.With(Field{Key: "account", Value: "alpha"}).(*BasicLogger)
	second := parent.With(Field{Key: "account", Value: "beta"}).(*BasicLogger)

	if len(parent.fields) != 1 {
		t.Fatalf("expected parent fields unchanged, got %+v", parent.fields)
	}
	if first.fields[1].Value != "alpha" || second.fields[1].Value != "beta" {
		t.Fatalf("expected independent derived loggers, got %+v / %+v", first.fields, second.fields)
	}
}

func TestWithNoFieldsReturnsSameLogger(t *testing.T) {
	l := New()
	if l.With() != Logger(l) {
		t.Fatalf("expected With() without fields to return the receiver")
	}
}
