package model

import "time"

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldAction    = "action"
	FieldTableName = "table_name"
	FieldRecordID  = "record_id"
	FieldCreatedAt = "created_at"
)

// AuditLog is append-only: no update or delete path exists anywhere in the
// codebase. UserID is nullable for anonymous public actions.
type AuditLog struct {
	ID        string    `db:"id"`
	UserID    *string   `db:"user_id"`
	Action    string    `db:"action"`
	TableName string    `db:"table_name"`
	RecordID  *string   `db:"record_id"`
	OldValue  *string   `db:"old_value"`
	NewValue  *string   `db:"new_value"`
	IPAddress string    `db:"ip_address"`
	CreatedAt time.Time `db:"created_at"`
}
