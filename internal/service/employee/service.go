package employee

import (
	"context"
	"errors"
	"time"

	"github.com/atlashr/atlashr-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if hireDate.After(time.Now()) {
		return employee.EmployeeResponse{}, employee.ErrFutureHireDate
	}

	_, err = s.employeeRepo.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "bank_transfer"
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:            uuid.NewString(),
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Position:      req.Position,
		Address:       req.Address,
		HireDate:      hireDate,
		PaymentMethod: paymentMethod,
		Status:        employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapEmployeeResponse(emp))
	}
	return result, nil
}

func mapEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		EmployeeCode:  emp.EmployeeCode,
		FullName:      emp.FullName,
		Position:      emp.Position,
		Address:       emp.Address,
		HireDate:      emp.HireDate.Format("2006-01-02"),
		PaymentMethod: emp.PaymentMethod,
		Status:        string(emp.Status),
	}
}
