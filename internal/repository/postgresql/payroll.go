package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payElementRepository struct {
	db *database.DB
}

func NewPayElementRepository(db *database.DB) payroll.ElementRepository {
	return &payElementRepository{db: db}
}

const elementColumns = `id, employee_id, payslip_id, kind, sub_kind, label, mode, amount, rate, base, taxable, contributable, created_at, updated_at`

func scanElement(row pgx.Row) (payroll.PayElement, error) {
	var e payroll.PayElement
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.PayslipID, &e.Kind, &e.SubKind, &e.Label, &e.Mode,
		&e.Amount, &e.Rate, &e.Base, &e.Taxable, &e.Contributable, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *payElementRepository) Create(ctx context.Context, element payroll.PayElement) (payroll.PayElement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_elements (id, employee_id, payslip_id, kind, sub_kind, label, mode, amount, rate, base, taxable, contributable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + elementColumns

	created, err := scanElement(q.QueryRow(ctx, query,
		element.ID, element.EmployeeID, element.PayslipID, element.Kind, element.SubKind,
		element.Label, element.Mode, element.Amount, element.Rate, element.Base,
		element.Taxable, element.Contributable,
	))
	if err != nil {
		return payroll.PayElement{}, fmt.Errorf("failed to create pay element: %w", err)
	}

	return created, nil
}

func (r *payElementRepository) GetByID(ctx context.Context, id string) (payroll.PayElement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + elementColumns + ` FROM pay_elements WHERE id = $1`

	e, err := scanElement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayElement{}, payroll.ErrPayElementNotFound
		}
		return payroll.PayElement{}, fmt.Errorf("failed to get pay element: %w", err)
	}

	return e, nil
}

func (r *payElementRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayElement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + elementColumns + ` FROM pay_elements WHERE employee_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay elements: %w", err)
	}
	defer rows.Close()

	var elements []payroll.PayElement
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay element: %w", err)
		}
		elements = append(elements, e)
	}
	return elements, rows.Err()
}

func (r *payElementRepository) ExistsByKindSubKind(ctx context.Context, employeeID string, kind payroll.ElementKind, subKind string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pay_elements
			WHERE employee_id = $1 AND kind = $2 AND sub_kind = $3
		)
	`, employeeID, kind, subKind).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pay element existence: %w", err)
	}
	return exists, nil
}

func (r *payElementRepository) ExistsByLabel(ctx context.Context, employeeID string, labelContains string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Case-sensitive substring match, scoped to the employee.
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pay_elements
			WHERE employee_id = $1 AND POSITION($2 IN label) > 0
		)
	`, employeeID, labelContains).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pay element label: %w", err)
	}
	return exists, nil
}

func (r *payElementRepository) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE pay_elements SET amount = $1, updated_at = NOW() WHERE id = $2
	`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to update pay element amount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayElementNotFound
	}
	return nil
}

func (r *payElementRepository) AttachToPayslip(ctx context.Context, elementIDs []string, payslipID string) error {
	if len(elementIDs) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE pay_elements SET payslip_id = $1, updated_at = NOW() WHERE id = ANY($2)
	`, payslipID, elementIDs)
	if err != nil {
		return fmt.Errorf("failed to attach pay elements to payslip: %w", err)
	}
	return nil
}

// ========== PAYSLIPS ==========

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `id, employee_id, period_month, period_year, gross_salary, taxable_gross, employee_contributions, net_taxable, income_tax, net_salary, status, generated_at, document`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var s payroll.Payslip
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PeriodMonth, &s.PeriodYear,
		&s.GrossSalary, &s.TaxableGross, &s.EmployeeContributions,
		&s.NetTaxable, &s.IncomeTax, &s.NetSalary,
		&s.Status, &s.GeneratedAt, &s.Document,
	)
	return s, err
}

func (r *payslipRepository) Save(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, period_month, period_year,
			gross_salary, taxable_gross, employee_contributions,
			net_taxable, income_tax, net_salary, status, generated_at, document
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			gross_salary = EXCLUDED.gross_salary,
			taxable_gross = EXCLUDED.taxable_gross,
			employee_contributions = EXCLUDED.employee_contributions,
			net_taxable = EXCLUDED.net_taxable,
			income_tax = EXCLUDED.income_tax,
			net_salary = EXCLUDED.net_salary,
			status = EXCLUDED.status,
			generated_at = EXCLUDED.generated_at,
			document = EXCLUDED.document
		RETURNING ` + payslipColumns

	saved, err := scanPayslip(q.QueryRow(ctx, query,
		slip.ID, slip.EmployeeID, slip.PeriodMonth, slip.PeriodYear,
		slip.GrossSalary, slip.TaxableGross, slip.EmployeeContributions,
		slip.NetTaxable, slip.IncomeTax, slip.NetSalary,
		slip.Status, slip.GeneratedAt, slip.Document,
	))
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to save payslip: %w", err)
	}

	return saved, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	s, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return s, nil
}

func (r *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE employee_id = $1 AND period_month = $2 AND period_year = $3`

	s, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip by period: %w", err)
	}

	return s, nil
}

func (r *payslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1
		ORDER BY period_year DESC, period_month DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.Payslip
	for rows.Next() {
		s, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, s)
	}
	return slips, rows.Err()
}

func (r *payslipRepository) GetDocument(ctx context.Context, id string) ([]byte, error) {
	q := GetQuerier(ctx, r.db)

	var document []byte
	err := q.QueryRow(ctx, `SELECT document FROM payslips WHERE id = $1`, id).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip document: %w", err)
	}
	return document, nil
}
