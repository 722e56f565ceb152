package payroll

import (
	"context"
	"strings"
	"sync"

	"github.com/atlashr/atlashr-backend-go/internal/domain/employee"
	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes backing the service and calculator tests.

type fakeElementRepo struct {
	mu       sync.Mutex
	elements []payroll.PayElement
}

func (f *fakeElementRepo) Create(ctx context.Context, element payroll.PayElement) (payroll.PayElement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.elements = append(f.elements, element)
	return element, nil
}

func (f *fakeElementRepo) GetByID(ctx context.Context, id string) (payroll.PayElement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.elements {
		if e.ID == id {
			return e, nil
		}
	}
	return payroll.PayElement{}, payroll.ErrPayElementNotFound
}

func (f *fakeElementRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayElement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []payroll.PayElement
	for _, e := range f.elements {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeElementRepo) ExistsByKindSubKind(ctx context.Context, employeeID string, kind payroll.ElementKind, subKind string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.elements {
		if e.EmployeeID == employeeID && e.Kind == kind && e.SubKind == subKind {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeElementRepo) ExistsByLabel(ctx context.Context, employeeID string, labelContains string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.elements {
		if e.EmployeeID == employeeID && strings.Contains(e.Label, labelContains) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeElementRepo) UpdateAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.elements {
		if f.elements[i].ID == id {
			a := amount
			f.elements[i].Amount = &a
			return nil
		}
	}
	return payroll.ErrPayElementNotFound
}

func (f *fakeElementRepo) AttachToPayslip(ctx context.Context, elementIDs []string, payslipID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make(map[string]bool, len(elementIDs))
	for _, id := range elementIDs {
		ids[id] = true
	}
	for i := range f.elements {
		if ids[f.elements[i].ID] {
			pid := payslipID
			f.elements[i].PayslipID = &pid
		}
	}
	return nil
}

type fakePayslipRepo struct {
	mu    sync.Mutex
	slips map[string]payroll.Payslip
}

func newFakePayslipRepo() *fakePayslipRepo {
	return &fakePayslipRepo{slips: make(map[string]payroll.Payslip)}
}

func (f *fakePayslipRepo) Save(ctx context.Context, slip payroll.Payslip) (payroll.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := slip
	stored.Elements = nil
	f.slips[slip.ID] = stored
	return stored, nil
}

func (f *fakePayslipRepo) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slip, ok := f.slips[id]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return slip, nil
}

func (f *fakePayslipRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, slip := range f.slips {
		if slip.EmployeeID == employeeID && slip.PeriodMonth == month && slip.PeriodYear == year {
			return slip, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (f *fakePayslipRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []payroll.Payslip
	for _, slip := range f.slips {
		if slip.EmployeeID == employeeID {
			out = append(out, slip)
		}
	}
	return out, nil
}

func (f *fakePayslipRepo) GetDocument(ctx context.Context, id string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slip, ok := f.slips[id]
	if !ok || len(slip.Document) == 0 {
		return nil, payroll.ErrPayslipNotFound
	}
	return slip.Document, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == employeeCode {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Status == employee.StatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func amountOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
