package payroll

import (
	"github.com/atlashr/atlashr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GeneratePayslipRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	Dependents  int    `json:"dependents"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	if r.Dependents < 0 {
		errs = append(errs, validator.ValidationError{Field: "dependents", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID                    string               `json:"id"`
	EmployeeID            string               `json:"employee_id"`
	PeriodMonth           int                  `json:"period_month"`
	PeriodYear            int                  `json:"period_year"`
	GrossSalary           decimal.Decimal      `json:"gross_salary"`
	TaxableGross          decimal.Decimal      `json:"taxable_gross"`
	EmployeeContributions decimal.Decimal      `json:"employee_contributions"`
	NetTaxable            decimal.Decimal      `json:"net_taxable"`
	IncomeTax             decimal.Decimal      `json:"income_tax"`
	NetSalary             decimal.Decimal      `json:"net_salary"`
	Status                string               `json:"status"`
	GeneratedAt           string               `json:"generated_at"`
	HasDocument           bool                 `json:"has_document"`
	Elements              []PayElementResponse `json:"elements,omitempty"`
}

// ========== ELEMENT DTOs ==========

type CreatePayElementRequest struct {
	EmployeeID    string           `json:"-"`
	Kind          string           `json:"kind"`
	SubKind       string           `json:"sub_kind"`
	Label         string           `json:"label"`
	Mode          string           `json:"mode"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	Base          *decimal.Decimal `json:"base,omitempty"`
	Taxable       bool             `json:"taxable"`
	Contributable bool             `json:"contributable"`
}

var validKinds = map[ElementKind]bool{
	KindBaseSalary:         true,
	KindFixedBonus:         true,
	KindVariableBonus:      true,
	KindOvertime:           true,
	KindAllowance:          true,
	KindAbsenceDeduction:   true,
	KindOtherDeduction:     true,
	KindSocialContribution: true,
	KindTax:                true,
	KindOther:              true,
}

var validModes = map[ComputationMode]bool{
	ModeFixedAmount:  true,
	ModeRateOfBase:   true,
	ModeScale:        true,
	ModePerDay:       true,
	ModePerHour:      true,
	ModeFormula:      true,
	ModeTimeTracking: true,
}

func (r *CreatePayElementRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Label == "" {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "is required"})
	}
	if !validKinds[ElementKind(r.Kind)] {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "is not a valid element kind"})
	}
	if !validModes[ComputationMode(r.Mode)] {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "is not a valid computation mode"})
	}
	if r.Mode == string(ModeFixedAmount) && r.Amount == nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "is required for fixed amount elements"})
	}
	if r.Mode == string(ModeRateOfBase) && (r.Rate == nil || r.Base == nil) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "rate and base are required for rate of base elements"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateElementAmountRequest struct {
	ID     string          `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *UpdateElementAmountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID == "" {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayElementResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	PayslipID     *string          `json:"payslip_id,omitempty"`
	Kind          string           `json:"kind"`
	SubKind       string           `json:"sub_kind,omitempty"`
	Label         string           `json:"label"`
	Mode          string           `json:"mode"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Rate          *decimal.Decimal `json:"rate,omitempty"`
	Base          *decimal.Decimal `json:"base,omitempty"`
	Taxable       bool             `json:"taxable"`
	Contributable bool             `json:"contributable"`
}
