package payroll

import (
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY CONFIG DTOs ==========

type UpsertConfigRequest struct {
	UserID     string                     `json:"user_id"`
	Basic      decimal.Decimal            `json:"basic"`
	HRA        decimal.Decimal            `json:"hra"`
	Allowances map[string]decimal.Decimal `json:"allowances,omitempty"`
	Deductions map[string]decimal.Decimal `json:"deductions,omitempty"`
}

func (r *UpsertConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID == "" {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if r.Basic.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic", Message: "must be non-negative"})
	}
	if r.HRA.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must be non-negative"})
	}
	for name, v := range r.Allowances {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "allowances." + name, Message: "must be non-negative"})
		}
	}
	for name, v := range r.Deductions {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deductions." + name, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	ID         string                     `json:"id"`
	UserID     string                     `json:"user_id"`
	Basic      decimal.Decimal            `json:"basic"`
	HRA        decimal.Decimal            `json:"hra"`
	Allowances map[string]decimal.Decimal `json:"allowances"`
	Deductions map[string]decimal.Decimal `json:"deductions"`
	UpdatedAt  string                     `json:"updated_at"`
}

func ToConfigResponse(c SalaryConfig) ConfigResponse {
	return ConfigResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Basic:      c.Basic,
		HRA:        c.HRA,
		Allowances: c.Allowances,
		Deductions: c.Deductions,
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

// ========== RUN DTOs ==========

type RunPayrollRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RunError records one user's failure inside a batch run.
type RunError struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// RunResult summarizes a batch run. A failing user never aborts the batch.
type RunResult struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	Generated int        `json:"generated"`
	Failed    int        `json:"failed"`
	Errors    []RunError `json:"errors,omitempty"`
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID                 string                     `json:"id"`
	UserID             string                     `json:"user_id"`
	Year               int                        `json:"year"`
	Month              int                        `json:"month"`
	TotalWorkingDays   int                        `json:"total_working_days"`
	WorkedDays         int                        `json:"worked_days"`
	LeaveFullDays      int                        `json:"leave_full_days"`
	LeaveHalfDays      int                        `json:"leave_half_days"`
	ChargeableFullDays int                        `json:"chargeable_full_days"`
	ChargeableHalfDays int                        `json:"chargeable_half_days"`
	OvertimeSeconds    int64                      `json:"overtime_seconds"`
	PerDaySalary       decimal.Decimal            `json:"per_day_salary"`
	Basic              decimal.Decimal            `json:"basic"`
	HRA                decimal.Decimal            `json:"hra"`
	Allowances         map[string]decimal.Decimal `json:"allowances,omitempty"`
	AllowancesSum      decimal.Decimal            `json:"allowances_sum"`
	GrossPay           decimal.Decimal            `json:"gross_pay"`
	LeaveDeduction     decimal.Decimal            `json:"leave_deduction"`
	PF                 decimal.Decimal            `json:"pf"`
	ESIEmployee        decimal.Decimal            `json:"esi_employee"`
	ProfessionalTax    decimal.Decimal            `json:"professional_tax"`
	TDS                decimal.Decimal            `json:"tds"`
	OtherDeductions    map[string]decimal.Decimal `json:"other_deductions,omitempty"`
	OtherDeductionsSum decimal.Decimal            `json:"other_deductions_sum"`
	NetPay             decimal.Decimal            `json:"net_pay"`
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Year:               p.Year,
		Month:              p.Month,
		TotalWorkingDays:   p.TotalWorkingDays,
		WorkedDays:         p.WorkedDays,
		LeaveFullDays:      p.LeaveFullDays,
		LeaveHalfDays:      p.LeaveHalfDays,
		ChargeableFullDays: p.ChargeableFullDays,
		ChargeableHalfDays: p.ChargeableHalfDays,
		OvertimeSeconds:    p.OvertimeSeconds,
		PerDaySalary:       p.PerDaySalary,
		Basic:              p.Basic,
		HRA:                p.HRA,
		Allowances:         p.Allowances,
		AllowancesSum:      p.AllowancesSum,
		GrossPay:           p.GrossPay,
		LeaveDeduction:     p.LeaveDeduction,
		PF:                 p.PF,
		ESIEmployee:        p.ESIEmployee,
		ProfessionalTax:    p.ProfessionalTax,
		TDS:                p.TDS,
		OtherDeductions:    p.OtherDeductions,
		OtherDeductionsSum: p.OtherDeductionsSum,
		NetPay:             p.NetPay,
	}
}

type YearSummaryResponse struct {
	UserID      string          `json:"user_id"`
	Year        int             `json:"year"`
	Gross       decimal.Decimal `json:"gross"`
	PF          decimal.Decimal `json:"pf"`
	ESIEmployee decimal.Decimal `json:"esi_employee"`
	TDS         decimal.Decimal `json:"tds"`
	Net         decimal.Decimal `json:"net"`
	Months      int             `json:"months"`
}

func ToYearSummaryResponse(s YearSummary) YearSummaryResponse {
	return YearSummaryResponse{
		UserID:      s.UserID,
		Year:        s.Year,
		Gross:       s.Gross,
		PF:          s.PF,
		ESIEmployee: s.ESIEmployee,
		TDS:         s.TDS,
		Net:         s.Net,
		Months:      s.Months,
	}
}

type StatutorySummaryResponse struct {
	Year             int             `json:"year"`
	TotalPF          decimal.Decimal `json:"total_pf"`
	TotalESIEmployee decimal.Decimal `json:"total_esi_employee"`
	TotalGross       decimal.Decimal `json:"total_gross"`
}

func ToStatutorySummaryResponse(s StatutorySummary) StatutorySummaryResponse {
	return StatutorySummaryResponse{
		Year:             s.Year,
		TotalPF:          s.TotalPF,
		TotalESIEmployee: s.TotalESIEmployee,
		TotalGross:       s.TotalGross,
	}
}

type PayslipSummaryResponse struct {
	ID       string          `json:"id"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	GrossPay decimal.Decimal `json:"gross_pay"`
	NetPay   decimal.Decimal `json:"net_pay"`
}
