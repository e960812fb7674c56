package models

import "time"

// AuditFields maps the audit columns present on every table.
type AuditFields struct {
	CreateTime time.Time `db:"create_time"`
	CreateUser int64     `db:"create_user"`
	UpdateTime time.Time `db:"update_time"`
	UpdateUser int64     `db:"update_user"`
}
