package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atlashr/atlashr-backend-go/internal/domain/employee"
	"github.com/atlashr/atlashr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, employee_code, full_name, position, address, hire_date, payment_method, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Position, &e.Address,
		&e.HireDate, &e.PaymentMethod, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, employee_code, full_name, position, address, hire_date, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.Position,
		newEmployee.Address, newEmployee.HireDate, newEmployee.PaymentMethod, newEmployee.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = $1 ORDER BY full_name`

	rows, err := q.Query(ctx, query, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
