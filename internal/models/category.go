package models

// Category maps a row of the category table.
type Category struct {
	ID     int64  `db:"id"`
	Type   int    `db:"type"`
	Name   string `db:"name"`
	Sort   int    `db:"sort"`
	Status int    `db:"status"`
	AuditFields
}
