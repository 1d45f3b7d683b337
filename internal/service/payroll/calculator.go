package payroll

import (
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/config"
	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculator turns a salary configuration plus attendance counts into a
// payslip. It is a pure function of its inputs: identical inputs always
// yield the identical payslip.
type Calculator struct {
	pfRate     decimal.Decimal
	esiRate    decimal.Decimal
	esiCeiling decimal.Decimal
}

func NewCalculator(cfg config.PayrollConfig) *Calculator {
	return &Calculator{
		pfRate:     cfg.PFRate,
		esiRate:    cfg.ESIEmployeeRate,
		esiCeiling: cfg.ESIWageCeiling,
	}
}

var two = decimal.NewFromInt(2)

// ComputePayslip computes gross, leave deduction, statutory deductions and
// net pay for one user and period. Chargeable leave counts arrive
// pre-computed; any paid entitlement has already been subtracted upstream.
//
// The leave deduction is derived from the unrounded per-day quotient and
// rounded once, so two chargeable days on a 29000/30 gross deduct 1933.33,
// not 2x the rounded 966.67.
func (c *Calculator) ComputePayslip(
	cfg payroll.SalaryConfig,
	att payroll.MonthlyAttendance,
	chargeable payroll.ChargeableDays,
	totalWorkingDays int,
	year, month int,
	overtimeSeconds int64,
) (payroll.Payslip, error) {
	allowancesSum := sumValues(cfg.Allowances)

	otherDeductions := make(map[string]decimal.Decimal)
	for name, v := range cfg.Deductions {
		switch name {
		case payroll.DeductionKeyProfessionalTax, payroll.DeductionKeyTDS, payroll.DeductionKeyESI:
		default:
			otherDeductions[name] = v
		}
	}
	otherSum := sumValues(otherDeductions)

	gross := cfg.Basic.Add(cfg.HRA).Add(allowancesSum)

	if totalWorkingDays == 0 {
		return payroll.Payslip{}, payroll.ErrZeroWorkingDays
	}
	perDay := gross.Div(decimal.NewFromInt(int64(totalWorkingDays)))

	leaveDeduction := perDay.Mul(decimal.NewFromInt(int64(chargeable.Full))).
		Add(perDay.Div(two).Mul(decimal.NewFromInt(int64(chargeable.Half)))).
		Round(2)

	// PF is 12% of basic only, never of gross. Whole currency units.
	pf := cfg.Basic.Mul(c.pfRate).Round(0)

	var esi decimal.Decimal
	if c.esiCeiling.IsPositive() {
		if gross.LessThanOrEqual(c.esiCeiling) {
			esi = gross.Mul(c.esiRate).Round(0)
		}
	} else {
		// No ceiling configured: the employee ESI figure is externally
		// supplied through the deductions map.
		esi = cfg.Deductions[payroll.DeductionKeyESI]
	}

	professionalTax := cfg.Deductions[payroll.DeductionKeyProfessionalTax]
	tds := cfg.Deductions[payroll.DeductionKeyTDS]

	net := gross.
		Sub(leaveDeduction).
		Sub(pf).
		Sub(esi).
		Sub(professionalTax).
		Sub(tds).
		Sub(otherSum)

	if net.IsNegative() {
		return payroll.Payslip{}, payroll.ErrNegativeNetPay
	}

	return payroll.Payslip{
		UserID:             cfg.UserID,
		Year:               year,
		Month:              month,
		TotalWorkingDays:   totalWorkingDays,
		WorkedDays:         att.WorkedDays,
		LeaveFullDays:      att.LeaveFullDays,
		LeaveHalfDays:      att.LeaveHalfDays,
		ChargeableFullDays: chargeable.Full,
		ChargeableHalfDays: chargeable.Half,
		OvertimeSeconds:    overtimeSeconds,
		PerDaySalary:       perDay.Round(2),
		Basic:              cfg.Basic,
		HRA:                cfg.HRA,
		Allowances:         copyValues(cfg.Allowances),
		AllowancesSum:      allowancesSum,
		GrossPay:           gross,
		LeaveDeduction:     leaveDeduction,
		PF:                 pf,
		ESIEmployee:        esi,
		ProfessionalTax:    professionalTax,
		TDS:                tds,
		OtherDeductions:    otherDeductions,
		OtherDeductionsSum: otherSum,
		NetPay:             net,
	}, nil
}

// TotalWorkingDays counts the days of the month that are not Sundays.
func TotalWorkingDays(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}

func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range m {
		sum = sum.Add(v)
	}
	return sum
}

func copyValues(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
