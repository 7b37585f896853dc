// Package audit defines the audit-trail contract for mutating operations.
// The PostgreSQL-backed recorder lives in infrastructure/storage/postgres.
package audit

import (
	"context"

	"freshstock/internal/core/id"
)

// Action is the kind of mutation being recorded.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionAdmit   Action = "admit"
	ActionClose   Action = "close"
	ActionConsume Action = "consume"
)

// Entry is one audit-trail record. Changes is marshalled to JSON by the
// recorder and compressed when large.
type Entry struct {
	EntityType string
	EntityID   id.ID
	Action     Action
	Changes    any
}

// Recorder persists audit entries. Recording is best-effort: services log
// failures but never fail the business operation over them.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Nop discards all entries. Used in tests and tooling.
type Nop struct{}

func (Nop) Record(ctx context.Context, entry Entry) error { return nil }
