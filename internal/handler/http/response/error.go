package response

import (
	"errors"
	"net/http"

	"github.com/atlashr/atlashr-backend-go/internal/domain/employee"
	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrFutureHireDate):
		BadRequest(w, "Hire date cannot be in the future", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayElementNotFound):
		NotFound(w, "Pay element not found")
	case errors.Is(err, payroll.ErrDuplicateElement):
		Conflict(w, "Pay element with this kind already exists for the employee")
	case errors.Is(err, payroll.ErrElementAmountNotSet):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNilPayslip),
		errors.Is(err, payroll.ErrNilEmployee),
		errors.Is(err, payroll.ErrNilElements):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
