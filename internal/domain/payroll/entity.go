package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryConfig is the single active compensation configuration for a user.
// Saving overwrites; there is no versioning.
type SalaryConfig struct {
	ID         string
	UserID     string
	Basic      decimal.Decimal
	HRA        decimal.Decimal
	Allowances map[string]decimal.Decimal
	Deductions map[string]decimal.Decimal
	UpdatedAt  time.Time
}

// Deduction map keys with statutory meaning. Professional tax and TDS are
// externally supplied figures, never derived here. The esi key is used only
// when no ESI wage ceiling is configured.
const (
	DeductionKeyProfessionalTax = "professional_tax"
	DeductionKeyTDS             = "tds"
	DeductionKeyESI             = "esi"
)

// MonthlyAttendance is the attendance aggregator output for one user and
// month: worked days plus approved leave days split by day type.
type MonthlyAttendance struct {
	WorkedDays    int
	LeaveFullDays int
	LeaveHalfDays int
}

// ChargeableDays are the leave days actually deducted from pay. Entitlement
// subtraction happens upstream of the calculator.
type ChargeableDays struct {
	Full int
	Half int
}

// Payslip is the generated result for (user, year, month). Regeneration
// overwrites the prior row for the same key.
type Payslip struct {
	ID                  string
	UserID              string
	Year                int
	Month               int
	TotalWorkingDays    int
	WorkedDays          int
	LeaveFullDays       int
	LeaveHalfDays       int
	ChargeableFullDays  int
	ChargeableHalfDays  int
	OvertimeSeconds     int64
	PerDaySalary        decimal.Decimal
	Basic               decimal.Decimal
	HRA                 decimal.Decimal
	Allowances          map[string]decimal.Decimal
	AllowancesSum       decimal.Decimal
	GrossPay            decimal.Decimal
	LeaveDeduction      decimal.Decimal
	PF                  decimal.Decimal
	ESIEmployee         decimal.Decimal
	ProfessionalTax     decimal.Decimal
	TDS                 decimal.Decimal
	OtherDeductions     map[string]decimal.Decimal
	OtherDeductionsSum  decimal.Decimal
	NetPay              decimal.Decimal
	CreatedAt           time.Time
}

// YearSummary aggregates a user's payslips over a calendar year (Form 16
// style figures).
type YearSummary struct {
	UserID      string
	Year        int
	Gross       decimal.Decimal
	PF          decimal.Decimal
	ESIEmployee decimal.Decimal
	TDS         decimal.Decimal
	Net         decimal.Decimal
	Months      int
}

// StatutorySummary aggregates PF/ESI withholdings across all users for a
// year.
type StatutorySummary struct {
	Year             int
	TotalPF          decimal.Decimal
	TotalESIEmployee decimal.Decimal
	TotalGross       decimal.Decimal
}
