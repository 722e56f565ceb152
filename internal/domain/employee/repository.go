package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
}

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
