package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/auth"
	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	UpsertConfig(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	Run(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListUserPayslips(w http.ResponseWriter, r *http.Request)
	MonthlyOverview(w http.ResponseWriter, r *http.Request)
	YearSummary(w http.ResponseWriter, r *http.Request)
	StatutorySummary(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func requester(w http.ResponseWriter, r *http.Request) (payroll.Requester, bool) {
	userID, role, ok := middleware.Identity(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return payroll.Requester{}, false
	}
	return payroll.Requester{UserID: userID, Role: role}, true
}

func (h *payrollHandlerImpl) UpsertConfig(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.UpsertConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration saved", result)
}

func (h *payrollHandlerImpl) GetConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetConfig(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run finished", result)
}

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GeneratePayslip(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), req, chi.URLParam(r, "userID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListUserPayslips(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListUserPayslips(r.Context(), req, chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) MonthlyOverview(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetMonthlyOverview(r.Context(), req, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) YearSummary(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}

	year := queryInt(r, "year", 0)
	if year == 0 {
		response.BadRequest(w, "year is required", nil)
		return
	}

	result, err := h.payrollService.GetYearSummary(r.Context(), req, chi.URLParam(r, "userID"), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) StatutorySummary(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", 0)
	if year == 0 {
		response.BadRequest(w, "year is required", nil)
		return
	}

	result, err := h.payrollService.GetStatutorySummary(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	req, ok := requester(w, r)
	if !ok {
		return
	}
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	doc, err := h.payrollService.RenderPayslip(r.Context(), req, chi.URLParam(r, "userID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

func periodParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year = queryInt(r, "year", 0)
	month = queryInt(r, "month", 0)
	if year == 0 || month == 0 {
		response.BadRequest(w, "year and month are required", nil)
		return 0, 0, false
	}
	return year, month, true
}
