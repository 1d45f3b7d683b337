package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fieldhr/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Document is the renderer input contract: one computed payslip plus the
// display fields a slip needs.
type Document struct {
	EmployeeName  string
	EmployeeEmail string
	Payslip       payroll.Payslip
}

// Renderer turns a payslip document into a byte stream in some format. The
// text renderer below is the only in-tree implementation; PDF generation
// plugs in behind the same interface.
type Renderer interface {
	Render(doc Document) (string, error)
}

type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(doc Document) (string, error) {
	p := doc.Payslip

	var b strings.Builder
	fmt.Fprintf(&b, "PAYSLIP %04d-%02d\n", p.Year, p.Month)
	fmt.Fprintf(&b, "Employee: %s <%s>\n\n", doc.EmployeeName, doc.EmployeeEmail)

	fmt.Fprintf(&b, "Working days: %d  Worked: %d  Leave (full/half): %d/%d\n",
		p.TotalWorkingDays, p.WorkedDays, p.LeaveFullDays, p.LeaveHalfDays)
	fmt.Fprintf(&b, "Overtime: %s\n\n", formatSeconds(p.OvertimeSeconds))

	fmt.Fprintf(&b, "EARNINGS\n")
	fmt.Fprintf(&b, "  Basic            %12s\n", p.Basic.StringFixed(2))
	fmt.Fprintf(&b, "  HRA              %12s\n", p.HRA.StringFixed(2))
	for _, name := range sortedKeys(p.Allowances) {
		fmt.Fprintf(&b, "  %-16s %12s\n", name, p.Allowances[name].StringFixed(2))
	}
	fmt.Fprintf(&b, "  Gross            %12s\n\n", p.GrossPay.StringFixed(2))

	fmt.Fprintf(&b, "DEDUCTIONS\n")
	fmt.Fprintf(&b, "  Leave            %12s\n", p.LeaveDeduction.StringFixed(2))
	fmt.Fprintf(&b, "  PF               %12s\n", p.PF.StringFixed(2))
	fmt.Fprintf(&b, "  ESI              %12s\n", p.ESIEmployee.StringFixed(2))
	fmt.Fprintf(&b, "  Professional tax %12s\n", p.ProfessionalTax.StringFixed(2))
	fmt.Fprintf(&b, "  TDS              %12s\n", p.TDS.StringFixed(2))
	for _, name := range sortedKeys(p.OtherDeductions) {
		fmt.Fprintf(&b, "  %-16s %12s\n", name, p.OtherDeductions[name].StringFixed(2))
	}
	fmt.Fprintf(&b, "\nNET PAY            %12s\n", p.NetPay.StringFixed(2))

	return b.String(), nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatSeconds(s int64) string {
	return fmt.Sprintf("%dh%02dm", s/3600, (s%3600)/60)
}
