package payroll

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/domain/overtime"
	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/document"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== IN-MEMORY FAKES ==========

type fakePayrollRepo struct {
	configs  map[string]payroll.SalaryConfig
	payslips map[string]payroll.Payslip
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		configs:  make(map[string]payroll.SalaryConfig),
		payslips: make(map[string]payroll.Payslip),
	}
}

func slipKey(userID string, year, month int) string {
	return fmt.Sprintf("%s/%d/%d", userID, year, month)
}

func (f *fakePayrollRepo) UpsertConfig(_ context.Context, c payroll.SalaryConfig) (payroll.SalaryConfig, error) {
	c.ID = "cfg-" + c.UserID
	f.configs[c.UserID] = c
	return c, nil
}

func (f *fakePayrollRepo) GetConfigByUserID(_ context.Context, userID string) (payroll.SalaryConfig, error) {
	c, ok := f.configs[userID]
	if !ok {
		return payroll.SalaryConfig{}, payroll.ErrConfigMissing
	}
	return c, nil
}

func (f *fakePayrollRepo) ListConfigs(_ context.Context) ([]payroll.SalaryConfig, error) {
	result := make([]payroll.SalaryConfig, 0, len(f.configs))
	for _, c := range f.configs {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakePayrollRepo) UpsertPayslip(_ context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	p.ID = "slip-" + slipKey(p.UserID, p.Year, p.Month)
	f.payslips[slipKey(p.UserID, p.Year, p.Month)] = p
	return p, nil
}

func (f *fakePayrollRepo) GetPayslip(_ context.Context, userID string, year, month int) (payroll.Payslip, error) {
	p, ok := f.payslips[slipKey(userID, year, month)]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) ListPayslipsByUser(_ context.Context, userID string) ([]payroll.Payslip, error) {
	var result []payroll.Payslip
	for _, p := range f.payslips {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) ListPayslipsByPeriod(_ context.Context, year, month int) ([]payroll.Payslip, error) {
	var result []payroll.Payslip
	for _, p := range f.payslips {
		if p.Year == year && p.Month == month {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePayrollRepo) GetYearSummary(_ context.Context, userID string, year int) (payroll.YearSummary, error) {
	summary := payroll.YearSummary{UserID: userID, Year: year}
	for _, p := range f.payslips {
		if p.UserID != userID || p.Year != year {
			continue
		}
		summary.Gross = summary.Gross.Add(p.GrossPay)
		summary.PF = summary.PF.Add(p.PF)
		summary.ESIEmployee = summary.ESIEmployee.Add(p.ESIEmployee)
		summary.TDS = summary.TDS.Add(p.TDS)
		summary.Net = summary.Net.Add(p.NetPay)
		summary.Months++
	}
	return summary, nil
}

func (f *fakePayrollRepo) GetStatutorySummary(_ context.Context, year int) (payroll.StatutorySummary, error) {
	summary := payroll.StatutorySummary{Year: year}
	for _, p := range f.payslips {
		if p.Year != year {
			continue
		}
		summary.TotalPF = summary.TotalPF.Add(p.PF)
		summary.TotalESIEmployee = summary.TotalESIEmployee.Add(p.ESIEmployee)
		summary.TotalGross = summary.TotalGross.Add(p.GrossPay)
	}
	return summary, nil
}

type fakeAttendanceRepo struct {
	workedDays map[string]int
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) SetPunchOut(_ context.Context, _ string, _ time.Time, _, _ *float64) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) CountWorkedDays(_ context.Context, userID string, _, _ time.Time) (int, error) {
	return f.workedDays[userID], nil
}

func (f *fakeAttendanceRepo) GetDayPunches(_ context.Context, _ string, _ time.Time) (*time.Time, *time.Time, error) {
	return nil, nil, nil
}

type fakeLeaveRepo struct {
	approved map[string][]leave.Request
}

func (f *fakeLeaveRepo) Create(_ context.Context, r leave.Request) (leave.Request, error) {
	return r, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.ListFilter) ([]leave.Request, int64, error) {
	return nil, 0, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leave.Status, _ string) (leave.Request, error) {
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(_ context.Context, userID string, _, _ time.Time) ([]leave.Request, error) {
	return f.approved[userID], nil
}

type fakeOvertimeRepo struct {
	seconds map[string]int64
}

func (f *fakeOvertimeRepo) Upsert(_ context.Context, r overtime.Record) (overtime.Record, error) {
	return r, nil
}

func (f *fakeOvertimeRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (overtime.Record, error) {
	return overtime.Record{}, overtime.ErrRecordNotFound
}

func (f *fakeOvertimeRepo) ListByUser(_ context.Context, _ string, _, _ time.Time) ([]overtime.Record, error) {
	return nil, nil
}

func (f *fakeOvertimeRepo) SumSeconds(_ context.Context, userID string, _, _ time.Time) (int64, error) {
	return f.seconds[userID], nil
}

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	return f.users, nil
}

// ========== FIXTURE ==========

type fixture struct {
	svc         *PayrollServiceImpl
	payrollRepo *fakePayrollRepo
	attRepo     *fakeAttendanceRepo
	leaveRepo   *fakeLeaveRepo
	otRepo      *fakeOvertimeRepo
	userRepo    *fakeUserRepo
}

func newFixture() *fixture {
	f := &fixture{
		payrollRepo: newFakePayrollRepo(),
		attRepo:     &fakeAttendanceRepo{workedDays: make(map[string]int)},
		leaveRepo:   &fakeLeaveRepo{approved: make(map[string][]leave.Request)},
		otRepo:      &fakeOvertimeRepo{seconds: make(map[string]int64)},
		userRepo:    &fakeUserRepo{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewPayrollService(
		f.payrollRepo, f.attRepo, f.leaveRepo, f.otRepo, f.userRepo,
		NewCalculator(testPayrollConfig()),
		document.NewTextRenderer(),
		logger,
	)
	f.svc = svc.(*PayrollServiceImpl)
	return f
}

func (f *fixture) addUser(id string, role user.Role) {
	f.userRepo.users = append(f.userRepo.users, user.User{
		ID:    id,
		Name:  "User " + id,
		Email: id + "@example.com",
		Role:  role,
	})
}

func (f *fixture) addConfig(userID string) {
	f.payrollRepo.configs[userID] = payroll.SalaryConfig{
		ID:     "cfg-" + userID,
		UserID: userID,
		Basic:  decimal.NewFromInt(20000),
		HRA:    decimal.NewFromInt(8000),
		Allowances: map[string]decimal.Decimal{
			"transport": decimal.NewFromInt(1000),
		},
		Deductions: map[string]decimal.Decimal{
			"professional_tax": decimal.NewFromInt(200),
			"tds":              decimal.NewFromInt(500),
		},
	}
}

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// ========== AGGREGATOR ==========

func TestAggregate_CountsWorkedAndLeaveDays(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.attRepo.workedDays["u1"] = 20
	f.leaveRepo.approved["u1"] = []leave.Request{
		{ID: "l1", UserID: "u1", StartDate: datePtr("2025-06-10"), EndDate: datePtr("2025-06-12"), DayType: leave.DayTypeFull, Status: leave.StatusApproved},
		{ID: "l2", UserID: "u1", StartDate: datePtr("2025-06-20"), EndDate: datePtr("2025-06-20"), DayType: leave.DayTypeHalf, Status: leave.StatusApproved},
	}

	att, err := f.svc.Aggregate(ctx, "u1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, 20, att.WorkedDays)
	assert.Equal(t, 3, att.LeaveFullDays)
	assert.Equal(t, 1, att.LeaveHalfDays)
}

func TestAggregate_ClipsOverlapToMonth(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Spans May 28 - June 3: only June 1-3 fall in the month.
	f.leaveRepo.approved["u1"] = []leave.Request{
		{ID: "l1", UserID: "u1", StartDate: datePtr("2025-05-28"), EndDate: datePtr("2025-06-03"), DayType: leave.DayTypeFull, Status: leave.StatusApproved},
	}

	att, err := f.svc.Aggregate(ctx, "u1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, att.LeaveFullDays)
}

func TestAggregate_SkipsMalformedLeaveRecords(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.leaveRepo.approved["u1"] = []leave.Request{
		{ID: "broken", UserID: "u1", StartDate: nil, EndDate: datePtr("2025-06-03"), DayType: leave.DayTypeFull, Status: leave.StatusApproved},
		{ID: "good", UserID: "u1", StartDate: datePtr("2025-06-05"), EndDate: datePtr("2025-06-06"), DayType: leave.DayTypeFull, Status: leave.StatusApproved},
	}

	att, err := f.svc.Aggregate(ctx, "u1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	// The malformed row is skipped, not fatal.
	assert.Equal(t, 2, att.LeaveFullDays)
}

func TestSumOvertime_ClampsNegatives(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.otRepo.seconds["u1"] = -120

	total, err := f.svc.SumOvertime(ctx, "u1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

// ========== GENERATION ==========

func TestGeneratePayslip_StoresResult(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addUser("u1", user.RoleEmployee)
	f.addConfig("u1")
	f.attRepo.workedDays["u1"] = 25
	f.otRepo.seconds["u1"] = 7200

	resp, err := f.svc.GeneratePayslip(ctx, "u1", 2025, 6)
	require.NoError(t, err)

	assert.Equal(t, 25, resp.TotalWorkingDays) // June 2025 minus Sundays
	assert.Equal(t, int64(7200), resp.OvertimeSeconds)
	assert.Equal(t, "25900", resp.NetPay.String())

	stored, err := f.payrollRepo.GetPayslip(ctx, "u1", 2025, 6)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, stored.ID)
}

func TestGeneratePayslip_MissingConfig(t *testing.T) {
	f := newFixture()
	f.addUser("u1", user.RoleEmployee)

	_, err := f.svc.GeneratePayslip(context.Background(), "u1", 2025, 6)
	assert.ErrorIs(t, err, payroll.ErrConfigMissing)
}

func TestGeneratePayslip_InvalidPeriod(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GeneratePayslip(context.Background(), "u1", 2025, 13)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestRunPayroll_CollectsPerUserFailures(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addUser("u1", user.RoleEmployee)
	f.addUser("u2", user.RoleEmployee)
	f.addUser("u3", user.RoleEngineer)
	f.addConfig("u1")
	// u2 has no salary config.
	f.addConfig("u3")

	result, err := f.svc.RunPayroll(ctx, payroll.RunPayrollRequest{Year: 2025, Month: 6})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Generated)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "u2", result.Errors[0].UserID)
	assert.Equal(t, payroll.ErrConfigMissing.Error(), result.Errors[0].Reason)

	// Siblings were not aborted by u2's failure.
	_, err = f.payrollRepo.GetPayslip(ctx, "u1", 2025, 6)
	assert.NoError(t, err)
	_, err = f.payrollRepo.GetPayslip(ctx, "u3", 2025, 6)
	assert.NoError(t, err)
}

func TestRunPayroll_RegenerationOverwrites(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addUser("u1", user.RoleEmployee)
	f.addConfig("u1")

	_, err := f.svc.RunPayroll(ctx, payroll.RunPayrollRequest{Year: 2025, Month: 6})
	require.NoError(t, err)
	_, err = f.svc.RunPayroll(ctx, payroll.RunPayrollRequest{Year: 2025, Month: 6})
	require.NoError(t, err)

	slips, err := f.payrollRepo.ListPayslipsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, slips, 1)
}

// ========== VISIBILITY ==========

func TestGetPayslip_Visibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addUser("admin-1", user.RoleAdmin)
	f.addUser("hr-1", user.RoleHR)
	f.addUser("emp-1", user.RoleEmployee)
	f.addUser("emp-2", user.RoleEmployee)
	f.addConfig("emp-1")
	f.addConfig("admin-1")
	f.attRepo.workedDays["emp-1"] = 25

	_, err := f.svc.GeneratePayslip(ctx, "emp-1", 2025, 6)
	require.NoError(t, err)
	_, err = f.svc.GeneratePayslip(ctx, "admin-1", 2025, 6)
	require.NoError(t, err)

	tests := []struct {
		name      string
		requester payroll.Requester
		target    string
		wantErr   error
	}{
		{"admin sees employee", payroll.Requester{UserID: "admin-1", Role: user.RoleAdmin}, "emp-1", nil},
		{"hr sees employee", payroll.Requester{UserID: "hr-1", Role: user.RoleHR}, "emp-1", nil},
		{"hr cannot see admin", payroll.Requester{UserID: "hr-1", Role: user.RoleHR}, "admin-1", payroll.ErrPayslipForbidden},
		{"self sees own", payroll.Requester{UserID: "emp-1", Role: user.RoleEmployee}, "emp-1", nil},
		{"employee cannot see peer", payroll.Requester{UserID: "emp-2", Role: user.RoleEmployee}, "emp-1", payroll.ErrPayslipForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.GetPayslip(ctx, tt.requester, tt.target, 2025, 6)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRenderPayslip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.addUser("emp-1", user.RoleEmployee)
	f.addConfig("emp-1")
	f.attRepo.workedDays["emp-1"] = 25

	_, err := f.svc.GeneratePayslip(ctx, "emp-1", 2025, 6)
	require.NoError(t, err)

	doc, err := f.svc.RenderPayslip(ctx, payroll.Requester{UserID: "emp-1", Role: user.RoleEmployee}, "emp-1", 2025, 6)
	require.NoError(t, err)

	assert.Contains(t, doc, "PAYSLIP 2025-06")
	assert.Contains(t, doc, "User emp-1")
	assert.Contains(t, doc, "25900.00")
}
