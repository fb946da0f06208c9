package model

import "time"

// Lifecycle is the single inventory lifecycle tag used by rooms, room types
// and staff accounts. It replaces the pair of independent "active" and
// "deleted" booleans, so the invalid "deleted but active" combination cannot
// be represented.
const (
	LifecycleActive   = "active"
	LifecycleInactive = "inactive"
	LifecycleDeleted  = "deleted"
)

type Lifecycle struct {
	Lifecycle string     `db:"lifecycle"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// IsBookable reports whether the record is live inventory.
func (l Lifecycle) IsBookable() bool {
	return l.Lifecycle == LifecycleActive
}

// MarkDeleted tags the record deleted at the given time.
func (l *Lifecycle) MarkDeleted(at time.Time) {
	l.Lifecycle = LifecycleDeleted
	l.DeletedAt = &at
}
