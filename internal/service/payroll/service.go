package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlashr/atlashr-backend-go/internal/domain/employee"
	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/database"
	"github.com/atlashr/atlashr-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payslipRepo  payroll.PayslipRepository
	elementRepo  payroll.ElementRepository
	employeeRepo employee.EmployeeRepository
	contribCalc  *ContributionCalculator
	taxCalc      *IncomeTaxCalculator
	runInTx      func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payslipRepo payroll.PayslipRepository,
	elementRepo payroll.ElementRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payslipRepo:  payslipRepo,
		elementRepo:  elementRepo,
		employeeRepo: employeeRepo,
		contribCalc:  NewContributionCalculator(elementRepo),
		taxCalc:      NewIncomeTaxCalculator(elementRepo),
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// GeneratePayslip computes the full payroll result for one employee and
// period. Aggregate fields are derived in strict order since each step feeds
// the next: gross, taxable gross, contributions, net taxable, income tax, net
// salary, document. Element synthesis and the payslip save run in a single
// transaction so a failure leaves no partial state behind.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	var generated payroll.Payslip
	err = s.runInTx(ctx, func(ctx context.Context) error {
		slip, err := s.loadOrCreatePayslip(ctx, req)
		if err != nil {
			return err
		}

		slip.GrossSalary, err = grossSalary(slip.Elements)
		if err != nil {
			return err
		}
		slip.TaxableGross, err = taxableGross(slip.Elements)
		if err != nil {
			return err
		}

		slip.EmployeeContributions, err = s.contribCalc.ComputeEmployeeContributions(ctx, &slip)
		if err != nil {
			return err
		}
		slip.NetTaxable = slip.TaxableGross.Sub(slip.EmployeeContributions)

		slip.IncomeTax, err = s.taxCalc.ComputeIncomeTax(ctx, &slip, req.Dependents)
		if err != nil {
			return err
		}
		slip.NetSalary = slip.TaxableGross.Sub(slip.EmployeeContributions).Sub(slip.IncomeTax)

		slip.Document, err = RenderPayslipPDF(&slip, &emp)
		if err != nil {
			return err
		}

		saved, err := s.payslipRepo.Save(ctx, slip)
		if err != nil {
			return err
		}

		elementIDs := make([]string, 0, len(slip.Elements))
		for _, e := range slip.Elements {
			elementIDs = append(elementIDs, e.ID)
		}
		if err := s.elementRepo.AttachToPayslip(ctx, elementIDs, saved.ID); err != nil {
			return err
		}

		saved.Elements = slip.Elements
		generated = saved
		return nil
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapPayslipResponse(generated, true), nil
}

// loadOrCreatePayslip reuses the existing slip id for the period when one
// exists, then attaches the employee's current pay element list to it.
func (s *PayrollServiceImpl) loadOrCreatePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.Payslip, error) {
	slip := payroll.Payslip{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Status:      payroll.PayslipStatusDraft,
		GeneratedAt: time.Now().UTC(),
	}

	existing, err := s.payslipRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
	if err == nil {
		slip.ID = existing.ID
	} else if !errors.Is(err, payroll.ErrPayslipNotFound) {
		return payroll.Payslip{}, err
	}

	elements, err := s.elementRepo.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if elements == nil {
		elements = []payroll.PayElement{}
	}
	slip.Elements = elements

	return slip, nil
}

// grossSalary sums earning amounts and subtracts deduction amounts.
func grossSalary(elements []payroll.PayElement) (decimal.Decimal, error) {
	gross := decimal.Zero
	for _, e := range elements {
		switch {
		case e.Kind.IsEarning():
			if e.Amount == nil {
				return decimal.Zero, fmt.Errorf("element %q: %w", e.Label, payroll.ErrElementAmountNotSet)
			}
			gross = gross.Add(*e.Amount)
		case e.Kind.IsDeduction():
			if e.Amount == nil {
				return decimal.Zero, fmt.Errorf("element %q: %w", e.Label, payroll.ErrElementAmountNotSet)
			}
			gross = gross.Sub(*e.Amount)
		}
	}
	return gross, nil
}

// taxableGross is a straight sum of taxable amounts, with no sign distinction
// for deduction kinds, mirroring the statutory worksheet.
func taxableGross(elements []payroll.PayElement) (decimal.Decimal, error) {
	taxable := decimal.Zero
	for _, e := range elements {
		if !e.Taxable {
			continue
		}
		if e.Amount == nil {
			return decimal.Zero, fmt.Errorf("element %q: %w", e.Label, payroll.ErrElementAmountNotSet)
		}
		taxable = taxable.Add(*e.Amount)
	}
	return taxable, nil
}

// ========== PAYSLIP QUERIES ==========

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return mapPayslipResponse(slip, false), nil
}

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	slips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		result = append(result, mapPayslipResponse(slip, false))
	}
	return result, nil
}

func (s *PayrollServiceImpl) GetPayslipDocument(ctx context.Context, id string) ([]byte, error) {
	return s.payslipRepo.GetDocument(ctx, id)
}

// ========== ELEMENTS ==========

func (s *PayrollServiceImpl) CreateElement(ctx context.Context, req payroll.CreatePayElementRequest) (payroll.PayElementResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayElementResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayElementResponse{}, err
	}

	exists, err := s.elementRepo.ExistsByKindSubKind(ctx, req.EmployeeID, payroll.ElementKind(req.Kind), req.SubKind)
	if err != nil {
		return payroll.PayElementResponse{}, err
	}
	if exists {
		return payroll.PayElementResponse{}, payroll.ErrDuplicateElement
	}

	element := payroll.PayElement{
		ID:            uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		Kind:          payroll.ElementKind(req.Kind),
		SubKind:       req.SubKind,
		Label:         req.Label,
		Mode:          payroll.ComputationMode(req.Mode),
		Amount:        req.Amount,
		Rate:          req.Rate,
		Base:          req.Base,
		Taxable:       req.Taxable,
		Contributable: req.Contributable,
	}

	// Rate-of-base elements get their amount resolved once at creation.
	if element.Amount == nil && element.Mode == payroll.ModeRateOfBase && element.Rate != nil && element.Base != nil {
		amount := element.Base.Mul(*element.Rate).Div(hundred).Round(2)
		element.Amount = &amount
	}

	created, err := s.elementRepo.Create(ctx, element)
	if err != nil {
		return payroll.PayElementResponse{}, err
	}

	return mapElementResponse(created), nil
}

func (s *PayrollServiceImpl) ListEmployeeElements(ctx context.Context, employeeID string) ([]payroll.PayElementResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	elements, err := s.elementRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayElementResponse, 0, len(elements))
	for _, e := range elements {
		result = append(result, mapElementResponse(e))
	}
	return result, nil
}

func (s *PayrollServiceImpl) UpdateElementAmount(ctx context.Context, req payroll.UpdateElementAmountRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.elementRepo.UpdateAmount(ctx, req.ID, req.Amount)
}

// ========== HELPERS ==========

func mapPayslipResponse(slip payroll.Payslip, includeElements bool) payroll.PayslipResponse {
	resp := payroll.PayslipResponse{
		ID:                    slip.ID,
		EmployeeID:            slip.EmployeeID,
		PeriodMonth:           slip.PeriodMonth,
		PeriodYear:            slip.PeriodYear,
		GrossSalary:           slip.GrossSalary,
		TaxableGross:          slip.TaxableGross,
		EmployeeContributions: slip.EmployeeContributions,
		NetTaxable:            slip.NetTaxable,
		IncomeTax:             slip.IncomeTax,
		NetSalary:             slip.NetSalary,
		Status:                string(slip.Status),
		GeneratedAt:           slip.GeneratedAt.Format(time.RFC3339),
		HasDocument:           len(slip.Document) > 0,
	}
	if includeElements {
		resp.Elements = make([]payroll.PayElementResponse, 0, len(slip.Elements))
		for _, e := range slip.Elements {
			resp.Elements = append(resp.Elements, mapElementResponse(e))
		}
	}
	return resp
}

func mapElementResponse(e payroll.PayElement) payroll.PayElementResponse {
	return payroll.PayElementResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		PayslipID:     e.PayslipID,
		Kind:          string(e.Kind),
		SubKind:       e.SubKind,
		Label:         e.Label,
		Mode:          string(e.Mode),
		Amount:        e.Amount,
		Rate:          e.Rate,
		Base:          e.Base,
		Taxable:       e.Taxable,
		Contributable: e.Contributable,
	}
}
