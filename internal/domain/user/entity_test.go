package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewPayslipOf(t *testing.T) {
	tests := []struct {
		name          string
		requesterID   string
		requesterRole Role
		targetID      string
		targetRole    Role
		want          bool
	}{
		{"self always", "u1", RoleEmployee, "u1", RoleEmployee, true},
		{"admin sees everyone", "a1", RoleAdmin, "u1", RoleEmployee, true},
		{"admin sees hr", "a1", RoleAdmin, "h1", RoleHR, true},
		{"hr sees employee", "h1", RoleHR, "u1", RoleEmployee, true},
		{"hr sees engineer", "h1", RoleHR, "e1", RoleEngineer, true},
		{"hr cannot see admin", "h1", RoleHR, "a1", RoleAdmin, false},
		{"employee cannot see peer", "u1", RoleEmployee, "u2", RoleEmployee, false},
		{"engineer cannot see hr", "e1", RoleEngineer, "h1", RoleHR, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanViewPayslipOf(tt.requesterID, tt.requesterRole, tt.targetID, tt.targetRole)
			assert.Equal(t, tt.want, got)
		})
	}
}
