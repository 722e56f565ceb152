package employee

import "time"

type Employee struct {
	ID            string
	EmployeeCode  string
	FullName      string
	Position      string
	Address       *string
	HireDate      time.Time
	PaymentMethod string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
