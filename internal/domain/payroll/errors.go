package payroll

import "errors"

var (
	ErrPayslipNotFound     = errors.New("payslip not found")
	ErrPayElementNotFound  = errors.New("pay element not found")
	ErrDuplicateElement    = errors.New("pay element already exists for this employee, kind and sub-kind")
	ErrElementAmountNotSet = errors.New("pay element amount has not been computed")
	ErrInvalidPeriod       = errors.New("invalid payroll period")
	ErrNilPayslip          = errors.New("payslip is required")
	ErrNilEmployee         = errors.New("payslip employee is required")
	ErrNilElements         = errors.New("payslip element list is required")
	ErrComputationFailed   = errors.New("payroll computation failed")
)
