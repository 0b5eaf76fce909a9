package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/payroll"
	"github.com/attendly-hr/attendly-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GetSalaryReport(w http.ResponseWriter, r *http.Request)
	RunPayroll(w http.ResponseWriter, r *http.Request)
	UpsertSalary(w http.ResponseWriter, r *http.Request)
	ListSalaryHistory(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func (h *PayrollHandlerImpl) GetSalaryReport(w http.ResponseWriter, r *http.Request) {
	req := payroll.SalaryReportRequest{
		EmployeeEmail: r.URL.Query().Get("email"),
		TillToday:     r.URL.Query().Get("till_today") != "false",
	}
	req.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	req.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetSalaryReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *PayrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *PayrollHandlerImpl) UpsertSalary(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeEmail = chi.URLParam(r, "email")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.UpsertSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary recorded", result)
}

func (h *PayrollHandlerImpl) ListSalaryHistory(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		response.BadRequest(w, "email is required", nil)
		return
	}

	result, err := h.payrollService.ListSalaryHistory(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
