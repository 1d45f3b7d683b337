package payroll

import "errors"

var (
	// ErrConfigMissing - no salary configuration exists for the user.
	// Surfaced on single generation, recorded and skipped in batch runs.
	ErrConfigMissing = errors.New("no salary configuration for user")

	// ErrZeroWorkingDays - the month resolved to zero working days, so a
	// per-day salary cannot be derived.
	ErrZeroWorkingDays = errors.New("total working days in month is zero")

	// ErrNegativeNetPay - the computed net pay is below zero. This signals
	// a misconfiguration and is never clamped to zero.
	ErrNegativeNetPay = errors.New("computed net pay is negative")

	ErrPayslipNotFound  = errors.New("payslip not found")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrPayslipForbidden = errors.New("not allowed to view this payslip")
)
