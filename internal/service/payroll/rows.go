package payroll

import (
	"sort"
	"strings"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Fixed display order of element kinds on the printed slip. Unmapped kinds
// sort last; ties keep encounter order.
var displayPriority = map[payroll.ElementKind]int{
	payroll.KindBaseSalary:         10,
	payroll.KindOvertime:           20,
	payroll.KindFixedBonus:         30,
	payroll.KindVariableBonus:      40,
	payroll.KindAllowance:          50,
	payroll.KindSocialContribution: 100,
	payroll.KindAbsenceDeduction:   110,
	payroll.KindOtherDeduction:     120,
	payroll.KindTax:                130,
}

const unmappedPriority = 999

func kindPriority(k payroll.ElementKind) int {
	if p, ok := displayPriority[k]; ok {
		return p
	}
	return unmappedPriority
}

type documentRow struct {
	Label    string
	Base     string
	Rate     string
	Amount   string
	Subtotal bool
}

// sortedElements returns the elements in display order without mutating the input.
func sortedElements(elements []payroll.PayElement) []payroll.PayElement {
	out := make([]payroll.PayElement, len(elements))
	copy(out, elements)
	sort.SliceStable(out, func(i, j int) bool {
		return kindPriority(out[i].Kind) < kindPriority(out[j].Kind)
	})
	return out
}

// buildRows assembles the itemized table body: sorted element rows with the
// gross subtotals inserted where the earnings block ends and the contributions
// subtotal where the contributions block ends. Each subtotal appears at most
// once; blocks that close the list get their subtotal appended at the end.
func buildRows(slip *payroll.Payslip) []documentRow {
	var rows []documentRow
	grossDone := false
	contribDone := false
	sawContribution := false

	grossRows := func() []documentRow {
		return []documentRow{
			{Label: "Total brut", Amount: formatAmount(&slip.GrossSalary), Subtotal: true},
			{Label: "Total brut imposable", Amount: formatAmount(&slip.TaxableGross), Subtotal: true},
		}
	}
	contribRow := func() documentRow {
		return documentRow{Label: "Total cotisations", Amount: formatAmount(&slip.EmployeeContributions), Subtotal: true}
	}

	for _, e := range sortedElements(slip.Elements) {
		if !grossDone && !e.Kind.IsEarning() {
			rows = append(rows, grossRows()...)
			grossDone = true
		}
		if !contribDone && !e.Kind.IsEarning() && e.Kind != payroll.KindSocialContribution {
			rows = append(rows, contribRow())
			contribDone = true
		}
		if e.Kind == payroll.KindSocialContribution {
			sawContribution = true
		}
		rows = append(rows, documentRow{
			Label:  e.Label,
			Base:   formatAmount(e.Base),
			Rate:   formatRate(e.Rate),
			Amount: formatAmount(e.Amount),
		})
	}

	if !grossDone {
		rows = append(rows, grossRows()...)
	}
	if !contribDone && sawContribution {
		rows = append(rows, contribRow())
	}

	return rows
}

// formatAmount renders a monetary value as a thousands-grouped fixed 2-decimal
// string. Zero and unset values render blank.
func formatAmount(d *decimal.Decimal) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return groupThousands(d.StringFixed(2))
}

// formatRate renders a percentage value with a trailing "%".
func formatRate(d *decimal.Decimal) string {
	if d == nil || d.IsZero() {
		return ""
	}
	return groupThousands(d.StringFixed(2)) + "%"
}

// groupThousands turns "1234567.89" into "1 234 567,89".
func groupThousands(fixed string) string {
	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}
