package payroll

import (
	"testing"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1 234 567,89", groupThousands("1234567.89"))
	assert.Equal(t, "123,45", groupThousands("123.45"))
	assert.Equal(t, "1 000,00", groupThousands("1000.00"))
	assert.Equal(t, "-12 500,50", groupThousands("-12500.50"))
	assert.Equal(t, "42", groupThousands("42"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "", formatAmount(nil))
	assert.Equal(t, "", formatAmount(amountOf("0")))
	assert.Equal(t, "10 000,00", formatAmount(amountOf("10000")))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "", formatRate(nil))
	assert.Equal(t, "4,48%", formatRate(amountOf("4.48")))
}

func TestSortedElements_KindOrderIsStable(t *testing.T) {
	elements := []payroll.PayElement{
		{Label: "IR", Kind: payroll.KindTax},
		{Label: "Prime A", Kind: payroll.KindFixedBonus},
		{Label: "CNSS", Kind: payroll.KindSocialContribution},
		{Label: "Salaire de base", Kind: payroll.KindBaseSalary},
		{Label: "Prime B", Kind: payroll.KindFixedBonus},
		{Label: "Divers", Kind: payroll.ElementKind("unknown")},
	}

	sorted := sortedElements(elements)

	labels := make([]string, len(sorted))
	for i, e := range sorted {
		labels[i] = e.Label
	}
	assert.Equal(t, []string{"Salaire de base", "Prime A", "Prime B", "CNSS", "IR", "Divers"}, labels)
	// input untouched
	assert.Equal(t, "IR", elements[0].Label)
}

func TestBuildRows_SubtotalPlacement(t *testing.T) {
	slip := &payroll.Payslip{
		GrossSalary:           decimal.NewFromInt(10000),
		TaxableGross:          decimal.NewFromInt(10000),
		EmployeeContributions: decimal.RequireFromString("404.40"),
		Elements: []payroll.PayElement{
			{Label: "Salaire de base", Kind: payroll.KindBaseSalary, Amount: amountOf("10000")},
			{Label: "CNSS", Kind: payroll.KindSocialContribution, Amount: amountOf("268.80")},
			{Label: "Impôt sur le revenu", Kind: payroll.KindTax, Amount: amountOf("1286.67")},
		},
	}

	rows := buildRows(slip)

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Salaire de base",
		"Total brut",
		"Total brut imposable",
		"CNSS",
		"Total cotisations",
		"Impôt sur le revenu",
	}, labels)

	require.True(t, rows[1].Subtotal)
	assert.Equal(t, "10 000,00", rows[1].Amount)
	require.True(t, rows[4].Subtotal)
	assert.Equal(t, "404,40", rows[4].Amount)
}

func TestBuildRows_EarningsOnlyAppendsGrossAtEnd(t *testing.T) {
	slip := &payroll.Payslip{
		GrossSalary:  decimal.NewFromInt(5000),
		TaxableGross: decimal.NewFromInt(5000),
		Elements: []payroll.PayElement{
			{Label: "Salaire de base", Kind: payroll.KindBaseSalary, Amount: amountOf("5000")},
		},
	}

	rows := buildRows(slip)

	require.Len(t, rows, 3)
	assert.Equal(t, "Salaire de base", rows[0].Label)
	assert.Equal(t, "Total brut", rows[1].Label)
	assert.Equal(t, "Total brut imposable", rows[2].Label)
}

func TestBuildRows_ContributionsCloseTheList(t *testing.T) {
	slip := &payroll.Payslip{
		GrossSalary:           decimal.NewFromInt(6000),
		TaxableGross:          decimal.NewFromInt(6000),
		EmployeeContributions: decimal.RequireFromString("404.40"),
		Elements: []payroll.PayElement{
			{Label: "Salaire de base", Kind: payroll.KindBaseSalary, Amount: amountOf("6000")},
			{Label: "CNSS", Kind: payroll.KindSocialContribution, Amount: amountOf("268.80")},
			{Label: "AMO", Kind: payroll.KindSocialContribution, Amount: amountOf("135.60")},
		},
	}

	rows := buildRows(slip)

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Salaire de base",
		"Total brut",
		"Total brut imposable",
		"CNSS",
		"AMO",
		"Total cotisations",
	}, labels)
}

func TestBuildRows_ZeroContributionsSubtotalRendersBlank(t *testing.T) {
	slip := &payroll.Payslip{
		GrossSalary:  decimal.NewFromInt(5000),
		TaxableGross: decimal.NewFromInt(5000),
		Elements: []payroll.PayElement{
			{Label: "Salaire de base", Kind: payroll.KindBaseSalary, Amount: amountOf("5000")},
			{Label: "Impôt sur le revenu", Kind: payroll.KindTax, Amount: amountOf("100")},
		},
	}

	rows := buildRows(slip)

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Salaire de base",
		"Total brut",
		"Total brut imposable",
		"Total cotisations",
		"Impôt sur le revenu",
	}, labels)
	assert.Equal(t, "", rows[3].Amount)
}
