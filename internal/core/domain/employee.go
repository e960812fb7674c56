package domain

// DefaultEmployeePassword is assigned to newly created employees.
const DefaultEmployeePassword = "123456"

// Employee is a back-office account.
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Sex          string `json:"sex"`
	IDNumber     string `json:"idNumber"`
	Status       int    `json:"status"`
	AuditFields
}

// IsEnabled reports whether the employee may log in.
func (e *Employee) IsEnabled() bool {
	return e.Status == StatusEnabled
}

// EmployeeQuery filters a paged employee listing.
type EmployeeQuery struct {
	Name     string
	Page     int
	PageSize int
}
