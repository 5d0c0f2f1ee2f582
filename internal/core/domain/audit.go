package domain

import "time"

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditRecord captures a single mutation of a movie for the audit trail.
type AuditRecord struct {
	MovieID   string
	Action    string
	Actor     string
	Fields    []string
	Timestamp time.Time
}
