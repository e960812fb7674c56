package domain

import "time"

// Status values shared by employees, categories and dishes.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// OperationType classifies a persistence write for audit filling.
type OperationType string

const (
	OperationInsert OperationType = "INSERT"
	OperationUpdate OperationType = "UPDATE"
)

// Auditable is implemented by every entity whose audit fields are filled
// before it is written.
type Auditable interface {
	SetCreateTime(t time.Time)
	SetCreateUser(employeeID int64)
	SetUpdateTime(t time.Time)
	SetUpdateUser(employeeID int64)
}

// AuditFields holds standard audit information for domain entities.
// Embed it by value; the pointer receivers make the embedding struct's
// pointer satisfy Auditable.
type AuditFields struct {
	CreateTime time.Time `json:"createTime"`
	CreateUser int64     `json:"createUser"` // Employee ID
	UpdateTime time.Time `json:"updateTime"`
	UpdateUser int64     `json:"updateUser"` // Employee ID
}

func (a *AuditFields) SetCreateTime(t time.Time)      { a.CreateTime = t }
func (a *AuditFields) SetCreateUser(employeeID int64) { a.CreateUser = employeeID }
func (a *AuditFields) SetUpdateTime(t time.Time)      { a.UpdateTime = t }
func (a *AuditFields) SetUpdateUser(employeeID int64) { a.UpdateUser = employeeID }

var _ Auditable = (*AuditFields)(nil)

// Page is one page of a paged listing.
type Page[T any] struct {
	Total   int64
	Records []T
}
