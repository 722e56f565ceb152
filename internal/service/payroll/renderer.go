package payroll

import (
	"bytes"
	"fmt"

	"github.com/atlashr/atlashr-backend-go/internal/domain/employee"
	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

// Days worked shown on the recap line. Attendance-based day counting is
// handled upstream; the slip prints the standard monthly figure.
const recapDaysWorked = "26"

// RenderPayslipPDF lays out the payslip document: header block, itemized
// element table with running subtotals, and the recap table.
func RenderPayslipPDF(slip *payroll.Payslip, emp *employee.Employee) ([]byte, error) {
	if slip == nil {
		return nil, payroll.ErrNilPayslip
	}
	if emp == nil {
		return nil, payroll.ErrNilEmployee
	}
	if slip.Elements == nil {
		return nil, payroll.ErrNilElements
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Bulletin de paie"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(95, 6, tr("Employeur : ................................"))
	pdf.Cell(0, 6, tr(fmt.Sprintf("Salarié : %s (%s)", emp.FullName, emp.EmployeeCode)))
	pdf.Ln(6)
	pdf.Cell(95, 6, tr("Adresse : ................................"))
	pdf.Cell(0, 6, tr(fmt.Sprintf("Poste : %s", emp.Position)))
	pdf.Ln(6)
	pdf.Cell(95, 6, tr("N° affiliation : ........................"))
	pdf.Cell(0, 6, tr(fmt.Sprintf("Date d'embauche : %s", emp.HireDate.Format("02/01/2006"))))
	pdf.Ln(6)
	pdf.Cell(95, 6, tr("Mode de paiement : ......................"))
	pdf.Cell(0, 6, tr(fmt.Sprintf("Période : %02d/%d", slip.PeriodMonth, slip.PeriodYear)))
	pdf.Ln(10)

	// Itemized element table
	colWidths := []float64{80, 35, 25, 40}
	headers := []string{"Libellé", "Base", "Taux", "Montant"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range buildRows(slip) {
		if row.Subtotal {
			pdf.SetFont("Helvetica", "B", 9)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(colWidths[0], 6, tr(row.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, tr(row.Base), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, tr(row.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, tr(row.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	// Recap table
	recapHeaders := []string{"Période", "Salaire brut", "Cot. salariales", "Cot. patronales", "Net imposable", "Jours travaillés", "Heures supp.", "Net à payer"}
	recapValues := []string{
		fmt.Sprintf("%02d/%d", slip.PeriodMonth, slip.PeriodYear),
		formatAmount(&slip.GrossSalary),
		formatAmount(&slip.EmployeeContributions),
		"",
		formatAmount(&slip.NetTaxable),
		recapDaysWorked,
		"",
		formatAmount(&slip.NetSalary),
	}

	recapWidth := 180.0 / float64(len(recapHeaders))
	pdf.SetFont("Helvetica", "B", 7)
	for _, h := range recapHeaders {
		pdf.CellFormat(recapWidth, 6, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)
	for _, v := range recapValues {
		pdf.CellFormat(recapWidth, 6, tr(v), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", payroll.ErrComputationFailed, err)
	}
	return buf.Bytes(), nil
}
