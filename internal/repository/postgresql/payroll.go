package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SALARY CONFIGS ==========

func (r *payrollRepository) UpsertConfig(ctx context.Context, config payroll.SalaryConfig) (payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := json.Marshal(orEmpty(config.Allowances))
	if err != nil {
		return payroll.SalaryConfig{}, fmt.Errorf("failed to marshal allowances: %w", err)
	}
	deductionsJSON, err := json.Marshal(orEmpty(config.Deductions))
	if err != nil {
		return payroll.SalaryConfig{}, fmt.Errorf("failed to marshal deductions: %w", err)
	}

	query := `
		INSERT INTO salary_configs (id, user_id, basic, hra, allowances, deductions)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb)
		ON CONFLICT (user_id) DO UPDATE SET
			basic = EXCLUDED.basic,
			hra = EXCLUDED.hra,
			allowances = EXCLUDED.allowances,
			deductions = EXCLUDED.deductions,
			updated_at = NOW()
		RETURNING id, user_id, basic, hra, allowances, deductions, updated_at
	`

	return r.scanConfig(q.QueryRow(ctx, query,
		uuid.NewString(), config.UserID, config.Basic, config.HRA, allowancesJSON, deductionsJSON,
	))
}

func (r *payrollRepository) GetConfigByUserID(ctx context.Context, userID string) (payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, basic, hra, allowances, deductions, updated_at
		FROM salary_configs
		WHERE user_id = $1
	`

	config, err := r.scanConfig(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryConfig{}, payroll.ErrConfigMissing
		}
		return payroll.SalaryConfig{}, err
	}

	return config, nil
}

func (r *payrollRepository) ListConfigs(ctx context.Context) ([]payroll.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, basic, hra, allowances, deductions, updated_at
		FROM salary_configs
		ORDER BY user_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configs: %w", err)
	}
	defer rows.Close()

	var configs []payroll.SalaryConfig
	for rows.Next() {
		config, err := r.scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	return configs, rows.Err()
}

func (r *payrollRepository) scanConfig(row pgx.Row) (payroll.SalaryConfig, error) {
	var c payroll.SalaryConfig
	var allowancesJSON, deductionsJSON []byte

	err := row.Scan(&c.ID, &c.UserID, &c.Basic, &c.HRA, &allowancesJSON, &deductionsJSON, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryConfig{}, pgx.ErrNoRows
		}
		return payroll.SalaryConfig{}, fmt.Errorf("failed to scan salary config: %w", err)
	}

	if err := json.Unmarshal(allowancesJSON, &c.Allowances); err != nil {
		return payroll.SalaryConfig{}, fmt.Errorf("failed to unmarshal allowances: %w", err)
	}
	if err := json.Unmarshal(deductionsJSON, &c.Deductions); err != nil {
		return payroll.SalaryConfig{}, fmt.Errorf("failed to unmarshal deductions: %w", err)
	}

	return c, nil
}

// ========== PAYSLIPS ==========

func (r *payrollRepository) UpsertPayslip(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := json.Marshal(orEmpty(p.Allowances))
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to marshal allowances: %w", err)
	}
	otherJSON, err := json.Marshal(orEmpty(p.OtherDeductions))
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to marshal other deductions: %w", err)
	}

	query := `
		INSERT INTO payslips (
			id, user_id, year, month,
			total_working_days, worked_days, leave_full_days, leave_half_days,
			chargeable_full_days, chargeable_half_days, overtime_seconds,
			per_day_salary, basic, hra, allowances, allowances_sum,
			gross_pay, leave_deduction, pf, esi_employee, professional_tax, tds,
			other_deductions, other_deductions_sum, net_pay
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15::jsonb,$16,$17,$18,$19,$20,$21,$22,$23::jsonb,$24,$25)
		ON CONFLICT (user_id, year, month) DO UPDATE SET
			total_working_days = EXCLUDED.total_working_days,
			worked_days = EXCLUDED.worked_days,
			leave_full_days = EXCLUDED.leave_full_days,
			leave_half_days = EXCLUDED.leave_half_days,
			chargeable_full_days = EXCLUDED.chargeable_full_days,
			chargeable_half_days = EXCLUDED.chargeable_half_days,
			overtime_seconds = EXCLUDED.overtime_seconds,
			per_day_salary = EXCLUDED.per_day_salary,
			basic = EXCLUDED.basic,
			hra = EXCLUDED.hra,
			allowances = EXCLUDED.allowances,
			allowances_sum = EXCLUDED.allowances_sum,
			gross_pay = EXCLUDED.gross_pay,
			leave_deduction = EXCLUDED.leave_deduction,
			pf = EXCLUDED.pf,
			esi_employee = EXCLUDED.esi_employee,
			professional_tax = EXCLUDED.professional_tax,
			tds = EXCLUDED.tds,
			other_deductions = EXCLUDED.other_deductions,
			other_deductions_sum = EXCLUDED.other_deductions_sum,
			net_pay = EXCLUDED.net_pay,
			created_at = NOW()
		RETURNING id, user_id, year, month,
			total_working_days, worked_days, leave_full_days, leave_half_days,
			chargeable_full_days, chargeable_half_days, overtime_seconds,
			per_day_salary, basic, hra, allowances, allowances_sum,
			gross_pay, leave_deduction, pf, esi_employee, professional_tax, tds,
			other_deductions, other_deductions_sum, net_pay, created_at
	`

	return r.scanPayslip(q.QueryRow(ctx, query,
		uuid.NewString(), p.UserID, p.Year, p.Month,
		p.TotalWorkingDays, p.WorkedDays, p.LeaveFullDays, p.LeaveHalfDays,
		p.ChargeableFullDays, p.ChargeableHalfDays, p.OvertimeSeconds,
		p.PerDaySalary, p.Basic, p.HRA, allowancesJSON, p.AllowancesSum,
		p.GrossPay, p.LeaveDeduction, p.PF, p.ESIEmployee, p.ProfessionalTax, p.TDS,
		otherJSON, p.OtherDeductionsSum, p.NetPay,
	))
}

func (r *payrollRepository) GetPayslip(ctx context.Context, userID string, year, month int) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, year, month,
			total_working_days, worked_days, leave_full_days, leave_half_days,
			chargeable_full_days, chargeable_half_days, overtime_seconds,
			per_day_salary, basic, hra, allowances, allowances_sum,
			gross_pay, leave_deduction, pf, esi_employee, professional_tax, tds,
			other_deductions, other_deductions_sum, net_pay, created_at
		FROM payslips
		WHERE user_id = $1 AND year = $2 AND month = $3
	`

	p, err := r.scanPayslip(q.QueryRow(ctx, query, userID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, err
	}

	return p, nil
}

func (r *payrollRepository) ListPayslipsByUser(ctx context.Context, userID string) ([]payroll.Payslip, error) {
	return r.listPayslips(ctx, `WHERE user_id = $1 ORDER BY year DESC, month DESC`, userID)
}

func (r *payrollRepository) ListPayslipsByPeriod(ctx context.Context, year, month int) ([]payroll.Payslip, error) {
	return r.listPayslips(ctx, `WHERE year = $1 AND month = $2 ORDER BY user_id`, year, month)
}

func (r *payrollRepository) listPayslips(ctx context.Context, tail string, args ...interface{}) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, year, month,
			total_working_days, worked_days, leave_full_days, leave_half_days,
			chargeable_full_days, chargeable_half_days, overtime_seconds,
			per_day_salary, basic, hra, allowances, allowances_sum,
			gross_pay, leave_deduction, pf, esi_employee, professional_tax, tds,
			other_deductions, other_deductions_sum, net_pay, created_at
		FROM payslips ` + tail

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var result []payroll.Payslip
	for rows.Next() {
		p, err := r.scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *payrollRepository) scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	var allowancesJSON, otherJSON []byte

	err := row.Scan(
		&p.ID, &p.UserID, &p.Year, &p.Month,
		&p.TotalWorkingDays, &p.WorkedDays, &p.LeaveFullDays, &p.LeaveHalfDays,
		&p.ChargeableFullDays, &p.ChargeableHalfDays, &p.OvertimeSeconds,
		&p.PerDaySalary, &p.Basic, &p.HRA, &allowancesJSON, &p.AllowancesSum,
		&p.GrossPay, &p.LeaveDeduction, &p.PF, &p.ESIEmployee, &p.ProfessionalTax, &p.TDS,
		&otherJSON, &p.OtherDeductionsSum, &p.NetPay, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, pgx.ErrNoRows
		}
		return payroll.Payslip{}, fmt.Errorf("failed to scan payslip: %w", err)
	}

	if err := json.Unmarshal(allowancesJSON, &p.Allowances); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to unmarshal allowances: %w", err)
	}
	if err := json.Unmarshal(otherJSON, &p.OtherDeductions); err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to unmarshal other deductions: %w", err)
	}

	return p, nil
}

// ========== AGGREGATIONS ==========

func (r *payrollRepository) GetYearSummary(ctx context.Context, userID string, year int) (payroll.YearSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(gross_pay), 0), COALESCE(SUM(pf), 0),
			COALESCE(SUM(esi_employee), 0), COALESCE(SUM(tds), 0),
			COALESCE(SUM(net_pay), 0), COUNT(*)
		FROM payslips
		WHERE user_id = $1 AND year = $2
	`

	s := payroll.YearSummary{UserID: userID, Year: year}
	err := q.QueryRow(ctx, query, userID, year).Scan(
		&s.Gross, &s.PF, &s.ESIEmployee, &s.TDS, &s.Net, &s.Months,
	)
	if err != nil {
		return payroll.YearSummary{}, fmt.Errorf("failed to get year summary: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) GetStatutorySummary(ctx context.Context, year int) (payroll.StatutorySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(pf), 0), COALESCE(SUM(esi_employee), 0), COALESCE(SUM(gross_pay), 0)
		FROM payslips
		WHERE year = $1
	`

	s := payroll.StatutorySummary{Year: year}
	err := q.QueryRow(ctx, query, year).Scan(&s.TotalPF, &s.TotalESIEmployee, &s.TotalGross)
	if err != nil {
		return payroll.StatutorySummary{}, fmt.Errorf("failed to get statutory summary: %w", err)
	}

	return s, nil
}

func orEmpty(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	if m == nil {
		return map[string]decimal.Decimal{}
	}
	return m
}
