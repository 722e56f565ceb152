package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// ElementRepository defines data access for pay elements.
type ElementRepository interface {
	Create(ctx context.Context, element PayElement) (PayElement, error)
	GetByID(ctx context.Context, id string) (PayElement, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayElement, error)
	// ExistsByKindSubKind backs the duplicate guard on explicit element creation.
	ExistsByKindSubKind(ctx context.Context, employeeID string, kind ElementKind, subKind string) (bool, error)
	// ExistsByLabel reports whether the employee already has an element whose
	// label contains the given text. The check is employee-scoped; the
	// calculators use it to avoid synthesizing duplicate CNSS/AMO/tax lines.
	ExistsByLabel(ctx context.Context, employeeID string, labelContains string) (bool, error)
	UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error
	AttachToPayslip(ctx context.Context, elementIDs []string, payslipID string) error
}

// PayslipRepository defines data access for generated payslips.
type PayslipRepository interface {
	Save(ctx context.Context, slip Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	GetDocument(ctx context.Context, id string) ([]byte, error)
}

// PayrollService is the payroll generation surface consumed by the HTTP layer.
type PayrollService interface {
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	GetPayslipDocument(ctx context.Context, id string) ([]byte, error)
	CreateElement(ctx context.Context, req CreatePayElementRequest) (PayElementResponse, error)
	ListEmployeeElements(ctx context.Context, employeeID string) ([]PayElementResponse, error)
	UpdateElementAmount(ctx context.Context, req UpdateElementAmountRequest) error
}
