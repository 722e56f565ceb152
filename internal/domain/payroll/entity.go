package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ElementKind enum
type ElementKind string

const (
	KindBaseSalary         ElementKind = "base_salary"
	KindFixedBonus         ElementKind = "fixed_bonus"
	KindVariableBonus      ElementKind = "variable_bonus"
	KindOvertime           ElementKind = "overtime"
	KindAllowance          ElementKind = "allowance"
	KindAbsenceDeduction   ElementKind = "absence_deduction"
	KindOtherDeduction     ElementKind = "other_deduction"
	KindSocialContribution ElementKind = "social_contribution"
	KindTax                ElementKind = "tax"
	KindOther              ElementKind = "other"
)

// IsEarning reports whether the kind adds to gross salary.
func (k ElementKind) IsEarning() bool {
	switch k {
	case KindBaseSalary, KindFixedBonus, KindVariableBonus, KindOvertime, KindAllowance:
		return true
	}
	return false
}

// IsDeduction reports whether the kind reduces gross salary and the
// contributory base.
func (k ElementKind) IsDeduction() bool {
	return k == KindAbsenceDeduction || k == KindOtherDeduction
}

// ComputationMode enum
type ComputationMode string

const (
	ModeFixedAmount  ComputationMode = "fixed_amount"
	ModeRateOfBase   ComputationMode = "rate_of_base"
	ModeScale        ComputationMode = "scale"
	ModePerDay       ComputationMode = "per_day"
	ModePerHour      ComputationMode = "per_hour"
	ModeFormula      ComputationMode = "formula"
	ModeTimeTracking ComputationMode = "time_tracking"
)

// PayElement - one pay or deduction line attached to an employee.
// Amount stays nil until the line has been computed; PayslipID stays nil
// while the line is pending, i.e. not yet attached to a generated slip.
type PayElement struct {
	ID            string
	EmployeeID    string
	PayslipID     *string
	Kind          ElementKind
	SubKind       string
	Label         string
	Mode          ComputationMode
	Amount        *decimal.Decimal
	Rate          *decimal.Decimal
	Base          *decimal.Decimal
	Taxable       bool
	Contributable bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft     PayslipStatus = "draft"
	PayslipStatusFinalized PayslipStatus = "finalized"
)

// Payslip - computed payroll result for one employee and period.
// Every monetary field is a derived aggregate; netSalary always equals
// taxableGross - employeeContributions - incomeTax after generation.
type Payslip struct {
	ID                    string
	EmployeeID            string
	PeriodMonth           int
	PeriodYear            int
	GrossSalary           decimal.Decimal
	TaxableGross          decimal.Decimal
	EmployeeContributions decimal.Decimal
	NetTaxable            decimal.Decimal
	IncomeTax             decimal.Decimal
	NetSalary             decimal.Decimal
	Status                PayslipStatus
	GeneratedAt           time.Time
	Document              []byte
	Elements              []PayElement
}
