package payroll

import (
	"testing"

	"github.com/fieldhr/hrms-backend-go/internal/config"
	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayrollConfig() config.PayrollConfig {
	return config.PayrollConfig{
		PFRate:             decimal.RequireFromString("0.12"),
		ESIEmployeeRate:    decimal.RequireFromString("0.0075"),
		ESIWageCeiling:     decimal.Zero,
		HoursPerWorkingDay: 8,
	}
}

func testSalaryConfig() payroll.SalaryConfig {
	return payroll.SalaryConfig{
		UserID: "user-1",
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

func TestComputePayslip_FullMonth(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	slip, err := calc.ComputePayslip(
		testSalaryConfig(),
		payroll.MonthlyAttendance{WorkedDays: 26},
		payroll.ChargeableDays{},
		30, 2025, 6, 0,
	)
	require.NoError(t, err)

	assert.Equal(t, "29000", slip.GrossPay.String())
	assert.Equal(t, "1000", slip.AllowancesSum.String())
	assert.Equal(t, "2400", slip.PF.String())
	assert.True(t, slip.ESIEmployee.IsZero())
	assert.Equal(t, "200", slip.ProfessionalTax.String())
	assert.Equal(t, "500", slip.TDS.String())
	assert.True(t, slip.LeaveDeduction.IsZero())
	assert.Equal(t, "25900", slip.NetPay.String())
}

func TestComputePayslip_ChargeableLeave(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	slip, err := calc.ComputePayslip(
		testSalaryConfig(),
		payroll.MonthlyAttendance{WorkedDays: 24, LeaveFullDays: 2},
		payroll.ChargeableDays{Full: 2},
		30, 2025, 6, 0,
	)
	require.NoError(t, err)

	assert.Equal(t, "966.67", slip.PerDaySalary.String())
	// Deduction comes from the unrounded quotient, rounded once.
	assert.Equal(t, "1933.33", slip.LeaveDeduction.String())
	assert.Equal(t, "23966.67", slip.NetPay.String())
}

func TestComputePayslip_HalfDays(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	full, err := calc.ComputePayslip(
		testSalaryConfig(),
		payroll.MonthlyAttendance{},
		payroll.ChargeableDays{Full: 1},
		30, 2025, 6, 0,
	)
	require.NoError(t, err)

	half, err := calc.ComputePayslip(
		testSalaryConfig(),
		payroll.MonthlyAttendance{},
		payroll.ChargeableDays{Half: 2},
		30, 2025, 6, 0,
	)
	require.NoError(t, err)

	// Two half days cost the same as one full day.
	assert.True(t, full.LeaveDeduction.Equal(half.LeaveDeduction),
		"full=%s half=%s", full.LeaveDeduction, half.LeaveDeduction)
}

func TestComputePayslip_ZeroWorkingDays(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	_, err := calc.ComputePayslip(
		testSalaryConfig(),
		payroll.MonthlyAttendance{},
		payroll.ChargeableDays{},
		0, 2025, 6, 0,
	)
	assert.ErrorIs(t, err, payroll.ErrZeroWorkingDays)
}

func TestComputePayslip_NegativeNetPay(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	cfg := testSalaryConfig()
	cfg.Deductions["loan_recovery"] = decimal.NewFromInt(50000)

	_, err := calc.ComputePayslip(
		cfg,
		payroll.MonthlyAttendance{},
		payroll.ChargeableDays{},
		30, 2025, 6, 0,
	)
	assert.ErrorIs(t, err, payroll.ErrNegativeNetPay)
}

func TestComputePayslip_OtherDeductionsExcludeStatutoryKeys(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	cfg := testSalaryConfig()
	cfg.Deductions["esi"] = decimal.NewFromInt(100)
	cfg.Deductions["canteen"] = decimal.NewFromInt(300)

	slip, err := calc.ComputePayslip(
		cfg,
		payroll.MonthlyAttendance{},
		payroll.ChargeableDays{},
		30, 2025, 6, 0,
	)
	require.NoError(t, err)

	// With no ceiling configured the esi key passes through as the
	// employee contribution, not as an "other" deduction.
	assert.Equal(t, "100", slip.ESIEmployee.String())
	assert.Equal(t, "300", slip.OtherDeductionsSum.String())
	assert.NotContains(t, slip.OtherDeductions, "esi")
	assert.NotContains(t, slip.OtherDeductions, "professional_tax")
	assert.NotContains(t, slip.OtherDeductions, "tds")
	// 29000 - 2400 - 100 - 200 - 500 - 300
	assert.Equal(t, "25500", slip.NetPay.String())
}

func TestComputePayslip_ESIWageCeiling(t *testing.T) {
	pc := testPayrollConfig()
	pc.ESIWageCeiling = decimal.NewFromInt(21000)
	calc := NewCalculator(pc)

	t.Run("gross under ceiling derives ESI", func(t *testing.T) {
		cfg := testSalaryConfig()
		cfg.Basic = decimal.NewFromInt(15000)
		cfg.HRA = decimal.NewFromInt(3000)
		cfg.Allowances = nil

		slip, err := calc.ComputePayslip(cfg, payroll.MonthlyAttendance{}, payroll.ChargeableDays{}, 30, 2025, 6, 0)
		require.NoError(t, err)

		// round(18000 * 0.0075)
		assert.Equal(t, "135", slip.ESIEmployee.String())
	})

	t.Run("gross over ceiling pays no ESI", func(t *testing.T) {
		cfg := testSalaryConfig()
		cfg.Deductions["esi"] = decimal.NewFromInt(100)

		slip, err := calc.ComputePayslip(cfg, payroll.MonthlyAttendance{}, payroll.ChargeableDays{}, 30, 2025, 6, 0)
		require.NoError(t, err)

		// The configured ceiling wins; the map value is ignored.
		assert.True(t, slip.ESIEmployee.IsZero())
	})
}

func TestComputePayslip_LeaveDeductionMonotonic(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	prev := decimal.Zero
	for days := 0; days <= 10; days++ {
		slip, err := calc.ComputePayslip(
			testSalaryConfig(),
			payroll.MonthlyAttendance{},
			payroll.ChargeableDays{Full: days},
			30, 2025, 6, 0,
		)
		require.NoError(t, err)
		assert.True(t, slip.LeaveDeduction.GreaterThanOrEqual(prev),
			"deduction shrank at %d days", days)
		prev = slip.LeaveDeduction
	}
}

func TestComputePayslip_Idempotent(t *testing.T) {
	calc := NewCalculator(testPayrollConfig())

	att := payroll.MonthlyAttendance{WorkedDays: 20, LeaveFullDays: 3, LeaveHalfDays: 1}
	chargeable := payroll.ChargeableDays{Full: 3, Half: 1}

	first, err := calc.ComputePayslip(testSalaryConfig(), att, chargeable, 30, 2025, 6, 3600)
	require.NoError(t, err)
	second, err := calc.ComputePayslip(testSalaryConfig(), att, chargeable, 30, 2025, 6, 3600)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTotalWorkingDays(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{2025, 6, 25}, // June 2025: 30 days, 5 Sundays
		{2025, 2, 24}, // February 2025: 28 days, 4 Sundays
		{2024, 2, 25}, // leap February 2024: 29 days, 4 Sundays
		{2025, 3, 26}, // March 2025: 31 days, 5 Sundays
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalWorkingDays(tt.year, tt.month),
			"year=%d month=%d", tt.year, tt.month)
	}
}
