package payroll

import (
	"context"
	"fmt"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const labelIncomeTax = "Impôt sur le revenu"

var (
	monthsPerYear              = decimal.NewFromInt(12)
	professionalExpenseRate    = decimal.RequireFromString("0.20")
	professionalExpenseCeiling = decimal.NewFromInt(30000)
	abatementPerDependent      = decimal.NewFromInt(360)
)

const maxDependents = 6

// Progressive annual income tax brackets. Boundary values fall in the lower
// bracket (inclusive upper bounds).
type taxBracket struct {
	upper    decimal.Decimal
	open     bool
	lower    decimal.Decimal
	fixedTax decimal.Decimal
	rate     decimal.Decimal
}

var taxBrackets = []taxBracket{
	{upper: decimal.NewFromInt(30000), lower: decimal.Zero, fixedTax: decimal.Zero, rate: decimal.Zero},
	{upper: decimal.NewFromInt(50000), lower: decimal.NewFromInt(30000), fixedTax: decimal.Zero, rate: decimal.RequireFromString("0.10")},
	{upper: decimal.NewFromInt(60000), lower: decimal.NewFromInt(50000), fixedTax: decimal.NewFromInt(2000), rate: decimal.RequireFromString("0.20")},
	{upper: decimal.NewFromInt(80000), lower: decimal.NewFromInt(60000), fixedTax: decimal.NewFromInt(4000), rate: decimal.RequireFromString("0.30")},
	{upper: decimal.NewFromInt(180000), lower: decimal.NewFromInt(80000), fixedTax: decimal.NewFromInt(10000), rate: decimal.RequireFromString("0.34")},
	{open: true, lower: decimal.NewFromInt(180000), fixedTax: decimal.NewFromInt(54800), rate: decimal.RequireFromString("0.38")},
}

// IncomeTaxCalculator derives the monthly income tax withheld from a payslip
// and makes sure the income tax pay element exists on the employee's record.
type IncomeTaxCalculator struct {
	elementRepo payroll.ElementRepository
}

func NewIncomeTaxCalculator(elementRepo payroll.ElementRepository) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{elementRepo: elementRepo}
}

// ComputeIncomeTax annualizes the slip's taxable gross, applies the
// professional expense deduction, the bracket table and the family abatement,
// then returns the monthly tax rounded to 2 decimals.
func (c *IncomeTaxCalculator) ComputeIncomeTax(ctx context.Context, slip *payroll.Payslip, dependents int) (decimal.Decimal, error) {
	monthly := MonthlyIncomeTax(slip.TaxableGross, dependents)

	if err := c.ensureTaxElement(ctx, slip, monthly); err != nil {
		return decimal.Zero, err
	}

	return monthly, nil
}

// MonthlyIncomeTax is the pure tax computation for a monthly taxable gross.
func MonthlyIncomeTax(taxableGross decimal.Decimal, dependents int) decimal.Decimal {
	annualTaxable := taxableGross.Mul(monthsPerYear)

	expenses := annualTaxable.Mul(professionalExpenseRate)
	if expenses.GreaterThan(professionalExpenseCeiling) {
		expenses = professionalExpenseCeiling
	}

	annualBase := annualTaxable.Sub(expenses)
	annualTax := AnnualBracketTax(annualBase).Sub(FamilyAbatement(dependents))
	if annualTax.IsNegative() {
		annualTax = decimal.Zero
	}

	return annualTax.Div(monthsPerYear).Round(2)
}

// AnnualBracketTax applies the progressive bracket table to an annual taxable base.
func AnnualBracketTax(base decimal.Decimal) decimal.Decimal {
	for _, b := range taxBrackets {
		if b.open || base.LessThanOrEqual(b.upper) {
			return b.fixedTax.Add(base.Sub(b.lower).Mul(b.rate))
		}
	}
	return decimal.Zero
}

// FamilyAbatement is the fixed annual tax credit per dependent, capped at six
// dependents.
func FamilyAbatement(dependents int) decimal.Decimal {
	if dependents < 0 {
		dependents = 0
	}
	if dependents > maxDependents {
		dependents = maxDependents
	}
	return decimal.NewFromInt(int64(dependents)).Mul(abatementPerDependent)
}

func (c *IncomeTaxCalculator) ensureTaxElement(ctx context.Context, slip *payroll.Payslip, amount decimal.Decimal) error {
	exists, err := c.elementRepo.ExistsByLabel(ctx, slip.EmployeeID, labelIncomeTax)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	element := payroll.PayElement{
		ID:         uuid.NewString(),
		EmployeeID: slip.EmployeeID,
		Kind:       payroll.KindTax,
		SubKind:    "IR",
		Label:      labelIncomeTax,
		Mode:       payroll.ModeScale,
		Amount:     &amount,
	}

	created, err := c.elementRepo.Create(ctx, element)
	if err != nil {
		return fmt.Errorf("failed to synthesize income tax element: %w", err)
	}

	slip.Elements = append(slip.Elements, created)
	return nil
}
