package models

// Employee maps a row of the employee table.
type Employee struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
	Phone        string `db:"phone"`
	Sex          string `db:"sex"`
	IDNumber     string `db:"id_number"`
	Status       int    `db:"status"`
	AuditFields
}
