package payroll

import (
	"context"
	"testing"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualBracketTax_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"exempt threshold", "30000", "0.00"},
		{"just above exempt", "30001", "0.10"},
		{"top of 10% bracket", "50000", "2000.00"},
		{"top of 20% bracket", "60000", "4000.00"},
		{"top of 30% bracket", "80000", "10000.00"},
		{"top of 34% bracket", "180000", "44000.00"},
		{"open bracket", "200000", "62400.00"},
		{"zero base", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnualBracketTax(decimal.RequireFromString(tt.base))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestFamilyAbatement(t *testing.T) {
	assert.Equal(t, "0.00", FamilyAbatement(0).StringFixed(2))
	assert.Equal(t, "720.00", FamilyAbatement(2).StringFixed(2))
	assert.Equal(t, "2160.00", FamilyAbatement(6).StringFixed(2))
	// capped at six dependents
	assert.Equal(t, "2160.00", FamilyAbatement(10).StringFixed(2))
	assert.Equal(t, "0.00", FamilyAbatement(-1).StringFixed(2))
}

func TestMonthlyIncomeTax(t *testing.T) {
	// 10000/month: annual 120000, expenses 24000, base 96000,
	// bracket tax 15440, abatement 720, monthly 14720/12.
	got := MonthlyIncomeTax(decimal.NewFromInt(10000), 2)
	assert.Equal(t, "1226.67", got.StringFixed(2))
}

func TestMonthlyIncomeTax_ExpenseCeiling(t *testing.T) {
	// 20000/month: annual 240000, 20% would be 48000 but expenses cap at
	// 30000, base 210000, bracket tax 54800 + 30000*0.38 = 66200.
	got := MonthlyIncomeTax(decimal.NewFromInt(20000), 0)
	assert.Equal(t, "5516.67", got.StringFixed(2))
}

func TestMonthlyIncomeTax_AbatementFloorsAtZero(t *testing.T) {
	// Low income in the exempt bracket stays at zero, never negative.
	got := MonthlyIncomeTax(decimal.NewFromInt(2700), 6)
	assert.Equal(t, "0.00", got.StringFixed(2))
}

func TestComputeIncomeTax_SynthesizesTaxElement(t *testing.T) {
	ctx := context.Background()
	elementRepo := &fakeElementRepo{}
	calc := NewIncomeTaxCalculator(elementRepo)

	slip := &payroll.Payslip{
		EmployeeID:   "emp-1",
		TaxableGross: decimal.NewFromInt(10000),
	}

	tax, err := calc.ComputeIncomeTax(ctx, slip, 0)
	require.NoError(t, err)
	assert.Equal(t, "1286.67", tax.StringFixed(2))

	created, err := elementRepo.ListByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, payroll.KindTax, created[0].Kind)
	assert.Equal(t, "IR", created[0].SubKind)
	assert.Equal(t, "Impôt sur le revenu", created[0].Label)
	assert.Equal(t, payroll.ModeScale, created[0].Mode)
	require.NotNil(t, created[0].Amount)
	assert.Equal(t, "1286.67", created[0].Amount.StringFixed(2))
	assert.Len(t, slip.Elements, 1)
}

func TestComputeIncomeTax_ExistingElementNotDuplicated(t *testing.T) {
	ctx := context.Background()
	elementRepo := &fakeElementRepo{
		elements: []payroll.PayElement{
			{ID: "e1", EmployeeID: "emp-1", Kind: payroll.KindTax, Label: "Impôt sur le revenu"},
		},
	}
	calc := NewIncomeTaxCalculator(elementRepo)

	slip := &payroll.Payslip{
		EmployeeID:   "emp-1",
		TaxableGross: decimal.NewFromInt(10000),
	}

	_, err := calc.ComputeIncomeTax(ctx, slip, 0)

	require.NoError(t, err)
	created, _ := elementRepo.ListByEmployee(ctx, "emp-1")
	assert.Len(t, created, 1)
	assert.Empty(t, slip.Elements)
}
