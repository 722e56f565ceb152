package payroll

import (
	"context"
	"fmt"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Statutory social security parameters. The CNSS/AMO contributory base is
// capped at a fixed monthly ceiling.
var (
	contributionCeiling = decimal.NewFromInt(6000)
	cnssRate            = decimal.RequireFromString("0.0448")
	amoRate             = decimal.RequireFromString("0.0226")
	hundred             = decimal.NewFromInt(100)
)

const (
	labelCNSS = "CNSS"
	labelAMO  = "AMO"
)

// ContributionCalculator computes employee social security withholdings
// (CNSS and AMO) and makes sure the corresponding pay element lines exist
// on the employee's record.
type ContributionCalculator struct {
	elementRepo payroll.ElementRepository
}

func NewContributionCalculator(elementRepo payroll.ElementRepository) *ContributionCalculator {
	return &ContributionCalculator{elementRepo: elementRepo}
}

// ComputeEmployeeContributions returns the total employee contribution for the
// slip and synthesizes missing CNSS/AMO elements. Synthesized elements are
// appended to slip.Elements so later stages see them.
func (c *ContributionCalculator) ComputeEmployeeContributions(ctx context.Context, slip *payroll.Payslip) (decimal.Decimal, error) {
	base, err := ContributoryBase(slip.Elements)
	if err != nil {
		return decimal.Zero, err
	}

	capped := base
	if capped.GreaterThan(contributionCeiling) {
		capped = contributionCeiling
	}

	cnss := capped.Mul(cnssRate).Round(2)
	amo := capped.Mul(amoRate).Round(2)

	if err := c.ensureContributionElement(ctx, slip, labelCNSS, cnssRate, capped, cnss); err != nil {
		return decimal.Zero, err
	}
	if err := c.ensureContributionElement(ctx, slip, labelAMO, amoRate, capped, amo); err != nil {
		return decimal.Zero, err
	}

	return cnss.Add(amo), nil
}

// ContributoryBase sums contributable element amounts and subtracts
// deduction-kind amounts. Every element involved must carry a computed amount.
func ContributoryBase(elements []payroll.PayElement) (decimal.Decimal, error) {
	contributable := decimal.Zero
	deductions := decimal.Zero

	for _, e := range elements {
		if e.Contributable {
			if e.Amount == nil {
				return decimal.Zero, fmt.Errorf("element %q: %w", e.Label, payroll.ErrElementAmountNotSet)
			}
			contributable = contributable.Add(*e.Amount)
		}
		if e.Kind.IsDeduction() {
			if e.Amount == nil {
				return decimal.Zero, fmt.Errorf("element %q: %w", e.Label, payroll.ErrElementAmountNotSet)
			}
			deductions = deductions.Add(*e.Amount)
		}
	}

	return contributable.Sub(deductions), nil
}

func (c *ContributionCalculator) ensureContributionElement(ctx context.Context, slip *payroll.Payslip, label string, rate, base, amount decimal.Decimal) error {
	exists, err := c.elementRepo.ExistsByLabel(ctx, slip.EmployeeID, label)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ratePercent := rate.Mul(hundred)
	element := payroll.PayElement{
		ID:         uuid.NewString(),
		EmployeeID: slip.EmployeeID,
		Kind:       payroll.KindSocialContribution,
		SubKind:    label,
		Label:      label,
		Mode:       payroll.ModeRateOfBase,
		Amount:     &amount,
		Rate:       &ratePercent,
		Base:       &base,
	}

	created, err := c.elementRepo.Create(ctx, element)
	if err != nil {
		return fmt.Errorf("failed to synthesize %s element: %w", label, err)
	}

	slip.Elements = append(slip.Elements, created)
	return nil
}
