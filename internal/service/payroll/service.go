package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/document"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	overtimeRepo   overtime.OvertimeRepository
	userRepo       user.UserRepository
	calc           *Calculator
	renderer       document.Renderer
	logger         *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	overtimeRepo overtime.OvertimeRepository,
	userRepo user.UserRepository,
	calc *Calculator,
	renderer document.Renderer,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		overtimeRepo:   overtimeRepo,
		userRepo:       userRepo,
		calc:           calc,
		renderer:       renderer,
		logger:         logger,
	}
}

// ========== SALARY CONFIG ==========

func (s *PayrollServiceImpl) UpsertConfig(ctx context.Context, req payroll.UpsertConfigRequest) (payroll.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ConfigResponse{}, err
	}

	// The user must exist before a config can point at them.
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return payroll.ConfigResponse{}, err
	}

	saved, err := s.payrollRepo.UpsertConfig(ctx, payroll.SalaryConfig{
		UserID:     req.UserID,
		Basic:      req.Basic,
		HRA:        req.HRA,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
	})
	if err != nil {
		return payroll.ConfigResponse{}, err
	}

	return payroll.ToConfigResponse(saved), nil
}

func (s *PayrollServiceImpl) GetConfig(ctx context.Context, userID string) (payroll.ConfigResponse, error) {
	cfg, err := s.payrollRepo.GetConfigByUserID(ctx, userID)
	if err != nil {
		return payroll.ConfigResponse{}, err
	}
	return payroll.ToConfigResponse(cfg), nil
}

// ========== AGGREGATION ==========

// Aggregate counts worked days and approved leave days for the user inside
// [monthStart, monthEnd]. Approved leave rows missing either date are logged
// and skipped; they never fail the aggregation.
func (s *PayrollServiceImpl) Aggregate(ctx context.Context, userID string, monthStart, monthEnd time.Time) (payroll.MonthlyAttendance, error) {
	worked, err := s.attendanceRepo.CountWorkedDays(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return payroll.MonthlyAttendance{}, err
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return payroll.MonthlyAttendance{}, err
	}

	att := payroll.MonthlyAttendance{WorkedDays: worked}
	for _, l := range leaves {
		days, err := l.OverlapDays(monthStart, monthEnd)
		if err != nil {
			s.logger.Warn("skipping malformed leave record",
				slog.String("leave_id", l.ID),
				slog.String("user_id", userID),
			)
			continue
		}
		if l.DayType == leave.DayTypeHalf {
			att.LeaveHalfDays += days
		} else {
			att.LeaveFullDays += days
		}
	}

	return att, nil
}

// SumOvertime totals overtime seconds for the user inside [monthStart,
// monthEnd]. Never negative.
func (s *PayrollServiceImpl) SumOvertime(ctx context.Context, userID string, monthStart, monthEnd time.Time) (int64, error) {
	total, err := s.overtimeRepo.SumSeconds(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return 0, err
	}
	if total < 0 {
		total = 0
	}
	return total, nil
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, userID string, year, month int) (payroll.PayslipResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return payroll.PayslipResponse{}, payroll.ErrInvalidPeriod
	}

	slip, err := s.generateFor(ctx, userID, year, month)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.ToPayslipResponse(slip), nil
}

func (s *PayrollServiceImpl) generateFor(ctx context.Context, userID string, year, month int) (payroll.Payslip, error) {
	cfg, err := s.payrollRepo.GetConfigByUserID(ctx, userID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	att, err := s.Aggregate(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return payroll.Payslip{}, err
	}

	overtimeSeconds, err := s.SumOvertime(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return payroll.Payslip{}, err
	}

	// No entitlement ledger yet: every approved leave day is chargeable.
	chargeable := payroll.ChargeableDays{
		Full: att.LeaveFullDays,
		Half: att.LeaveHalfDays,
	}

	slip, err := s.calc.ComputePayslip(cfg, att, chargeable, TotalWorkingDays(year, month), year, month, overtimeSeconds)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return s.payrollRepo.UpsertPayslip(ctx, slip)
}

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResult{}, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return payroll.RunResult{}, err
	}

	result := payroll.RunResult{Year: req.Year, Month: req.Month}
	for _, u := range users {
		if _, err := s.generateFor(ctx, u.ID, req.Year, req.Month); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, payroll.RunError{
				UserID: u.ID,
				Reason: err.Error(),
			})
			s.logger.Warn("payroll generation failed for user",
				slog.String("user_id", u.ID),
				slog.Int("year", req.Year),
				slog.Int("month", req.Month),
				slog.String("reason", err.Error()),
			)
			continue
		}
		result.Generated++
	}

	s.logger.Info("payroll run finished",
		slog.Int("year", req.Year),
		slog.Int("month", req.Month),
		slog.Int("generated", result.Generated),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// ========== RETRIEVAL ==========

func (s *PayrollServiceImpl) authorize(ctx context.Context, requester payroll.Requester, targetUserID string) (user.User, error) {
	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return user.User{}, err
	}
	if !user.CanViewPayslipOf(requester.UserID, requester.Role, target.ID, target.Role) {
		return user.User{}, payroll.ErrPayslipForbidden
	}
	return target, nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, requester payroll.Requester, userID string, year, month int) (payroll.PayslipResponse, error) {
	if _, err := s.authorize(ctx, requester, userID); err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip, err := s.payrollRepo.GetPayslip(ctx, userID, year, month)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.ToPayslipResponse(slip), nil
}

func (s *PayrollServiceImpl) ListUserPayslips(ctx context.Context, requester payroll.Requester, userID string) ([]payroll.PayslipSummaryResponse, error) {
	if _, err := s.authorize(ctx, requester, userID); err != nil {
		return nil, err
	}

	slips, err := s.payrollRepo.ListPayslipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayslipSummaryResponse, 0, len(slips))
	for _, slip := range slips {
		result = append(result, payroll.PayslipSummaryResponse{
			ID:       slip.ID,
			Year:     slip.Year,
			Month:    slip.Month,
			GrossPay: slip.GrossPay,
			NetPay:   slip.NetPay,
		})
	}
	return result, nil
}

func (s *PayrollServiceImpl) GetMonthlyOverview(ctx context.Context, requester payroll.Requester, year, month int) ([]payroll.PayslipResponse, error) {
	slips, err := s.payrollRepo.ListPayslipsByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		target, err := s.userRepo.GetByID(ctx, slip.UserID)
		if err != nil {
			return nil, err
		}
		if !user.CanViewPayslipOf(requester.UserID, requester.Role, target.ID, target.Role) {
			continue
		}
		result = append(result, payroll.ToPayslipResponse(slip))
	}
	return result, nil
}

func (s *PayrollServiceImpl) GetYearSummary(ctx context.Context, requester payroll.Requester, userID string, year int) (payroll.YearSummaryResponse, error) {
	if _, err := s.authorize(ctx, requester, userID); err != nil {
		return payroll.YearSummaryResponse{}, err
	}

	summary, err := s.payrollRepo.GetYearSummary(ctx, userID, year)
	if err != nil {
		return payroll.YearSummaryResponse{}, err
	}

	return payroll.ToYearSummaryResponse(summary), nil
}

func (s *PayrollServiceImpl) GetStatutorySummary(ctx context.Context, year int) (payroll.StatutorySummaryResponse, error) {
	summary, err := s.payrollRepo.GetStatutorySummary(ctx, year)
	if err != nil {
		return payroll.StatutorySummaryResponse{}, err
	}
	return payroll.ToStatutorySummaryResponse(summary), nil
}

func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, requester payroll.Requester, userID string, year, month int) (string, error) {
	target, err := s.authorize(ctx, requester, userID)
	if err != nil {
		return "", err
	}

	slip, err := s.payrollRepo.GetPayslip(ctx, userID, year, month)
	if err != nil {
		return "", err
	}

	return s.renderer.Render(document.Document{
		EmployeeName:  target.Name,
		EmployeeEmail: target.Email,
		Payslip:       slip,
	})
}
