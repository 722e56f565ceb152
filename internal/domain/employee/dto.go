package employee

import (
	"time"

	"github.com/atlashr/atlashr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Position      string  `json:"position"`
	Address       *string `json:"address,omitempty"`
	HireDate      string  `json:"hire_date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.HireDate == "" {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "is required"})
	} else if _, err := time.Parse("2006-01-02", r.HireDate); err != nil {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be formatted as YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Position      string  `json:"position"`
	Address       *string `json:"address,omitempty"`
	HireDate      string  `json:"hire_date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Status        string  `json:"status"`
}
