package user

import "time"

// Role is a user's permission tier.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
)

// ManagedRoles are the classifications a user record may carry as a
// management target. No record is classified as a super_admin target.
var ManagedRoles = []Role{RoleStudent, RoleTeacher, RoleStaff, RoleAdmin}

// ValidRole reports whether r is a known actor role.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleStaff, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// ValidManagedRole reports whether r is a valid target classification.
func ValidManagedRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User represents a school user record: admins, staff, teachers, students.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
