// Package models contains the database-backed domain entities.
package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// InternshipStatus defines the moderation state of an internship posting
type InternshipStatus string

const (
	InternshipPending  InternshipStatus = "pending"
	InternshipApproved InternshipStatus = "approved"
	InternshipRejected InternshipStatus = "rejected"
)

// IsValid reports whether the status is one of the known statuses
func (s InternshipStatus) IsValid() bool {
	switch s {
	case InternshipPending, InternshipApproved, InternshipRejected:
		return true
	}
	return false
}
