package payroll

import (
	"context"

	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
)

// Requester identifies the authenticated caller for authorization checks.
type Requester struct {
	UserID string
	Role   user.Role
}

// PayrollService defines business logic for salary configuration and
// payslip generation
type PayrollService interface {
	// UpsertConfig saves the single active salary configuration for a user,
	// overwriting any prior one.
	UpsertConfig(ctx context.Context, req UpsertConfigRequest) (ConfigResponse, error)

	// GetConfig returns a user's salary configuration.
	GetConfig(ctx context.Context, userID string) (ConfigResponse, error)

	// GeneratePayslip computes and stores the payslip for one user and
	// period. Errors propagate to the caller; nothing stale is returned.
	GeneratePayslip(ctx context.Context, userID string, year, month int) (PayslipResponse, error)

	// RunPayroll generates payslips for every configured user. Per-user
	// failures are collected in the result and never abort the batch.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunResult, error)

	// GetPayslip returns one stored payslip, subject to the requester's
	// visibility (admin sees all, hr sees non-admin, everyone their own).
	GetPayslip(ctx context.Context, requester Requester, userID string, year, month int) (PayslipResponse, error)

	// ListUserPayslips returns a user's stored payslips, newest first.
	ListUserPayslips(ctx context.Context, requester Requester, userID string) ([]PayslipSummaryResponse, error)

	// GetMonthlyOverview returns all payslips for a period, filtered by the
	// requester's visibility.
	GetMonthlyOverview(ctx context.Context, requester Requester, year, month int) ([]PayslipResponse, error)

	// GetYearSummary returns Form 16 style yearly figures for a user.
	GetYearSummary(ctx context.Context, requester Requester, userID string, year int) (YearSummaryResponse, error)

	// GetStatutorySummary returns PF/ESI totals across all users for a year.
	GetStatutorySummary(ctx context.Context, year int) (StatutorySummaryResponse, error)

	// RenderPayslip renders a stored payslip as a plain-text document.
	RenderPayslip(ctx context.Context, requester Requester, userID string, year, month int) (string, error)
}
