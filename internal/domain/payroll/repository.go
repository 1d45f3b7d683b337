package payroll

import "context"

// PayrollRepository defines data access for salary configs and payslips.
type PayrollRepository interface {
	// Salary configs
	UpsertConfig(ctx context.Context, config SalaryConfig) (SalaryConfig, error)
	GetConfigByUserID(ctx context.Context, userID string) (SalaryConfig, error)
	ListConfigs(ctx context.Context) ([]SalaryConfig, error)

	// Payslips
	UpsertPayslip(ctx context.Context, payslip Payslip) (Payslip, error)
	GetPayslip(ctx context.Context, userID string, year, month int) (Payslip, error)
	ListPayslipsByUser(ctx context.Context, userID string) ([]Payslip, error)
	ListPayslipsByPeriod(ctx context.Context, year, month int) ([]Payslip, error)

	// Aggregations
	GetYearSummary(ctx context.Context, userID string, year int) (YearSummary, error)
	GetStatutorySummary(ctx context.Context, year int) (StatutorySummary, error)
}
