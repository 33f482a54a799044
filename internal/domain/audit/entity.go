package audit

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entry is one append-only audit record. Before/After hold JSON snapshots
// of the mutated entity; either may be nil.
type Entry struct {
	ID            string
	UserID        string
	Action        Action
	EntityType    string
	EntityID      string
	Before        []byte
	After         []byte
	SourceAddress *string
	CreatedAt     time.Time
}

// AuditRepository appends audit entries. Writers treat failures as
// non-fatal: the audit trail is opportunistic, not required for
// correctness of the operation it records.
type AuditRepository interface {
	Append(ctx context.Context, e Entry) error
}
