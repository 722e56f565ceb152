package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/atlashr/atlashr-backend-go/internal/domain/payroll"
	"github.com/atlashr/atlashr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Payslips
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)

	// Pay elements
	CreateElement(w http.ResponseWriter, r *http.Request)
	ListEmployeeElements(w http.ResponseWriter, r *http.Request)
	UpdateElementAmount(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PAYSLIPS ==========

func (h *payrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.ListPayslips(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	document, err := h.payrollService.GetPayslipDocument(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+id+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}

// ========== PAY ELEMENTS ==========

func (h *payrollHandlerImpl) CreateElement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req payroll.CreatePayElementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.payrollService.CreateElement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay element created", result)
}

func (h *payrollHandlerImpl) ListEmployeeElements(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.ListEmployeeElements(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateElementAmount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Element ID is required", nil)
		return
	}

	var req payroll.UpdateElementAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	if err := h.payrollService.UpdateElementAmount(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
