package user

import "time"

// Role enum
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEngineer Role = "engineer"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanViewPayslipOf reports whether a requester with the given role may read
// another user's payslip. Admin sees everyone, HR sees everyone except
// admins, everyone sees their own.
func CanViewPayslipOf(requesterID string, requesterRole Role, targetID string, targetRole Role) bool {
	if requesterID == targetID {
		return true
	}
	switch requesterRole {
	case RoleAdmin:
		return true
	case RoleHR:
		return targetRole != RoleAdmin
	default:
		return false
	}
}
