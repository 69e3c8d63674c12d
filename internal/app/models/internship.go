package models

import "time"

// Internship defines the internship posting based on the 'internships' table
type Internship struct {
	ID           int64            `json:"id" db:"id"`
	CompanyID    int64            `json:"companyId" db:"company_id"`
	Title        string           `json:"title" db:"title"`
	Description  *string          `json:"description,omitempty" db:"description"`
	Requirements *string          `json:"requirements,omitempty" db:"requirements"`
	Location     *string          `json:"location,omitempty" db:"location"`
	Type         *string          `json:"type,omitempty" db:"type"`
	Duration     *string          `json:"duration,omitempty" db:"duration"`
	IsRemote     bool             `json:"isRemote" db:"is_remote"`
	Deadline     *time.Time       `json:"deadline,omitempty" db:"deadline"`
	Status       InternshipStatus `json:"status" db:"status"`
	PostedAt     time.Time        `json:"postedAt" db:"posted_at"`
	UpdatedAt    time.Time        `json:"updatedAt" db:"updated_at"`

	// CompanyName is joined from the owning company for listings
	CompanyName string `json:"companyName,omitempty"`

	// Application counters for the company-owner view
	ApplicationCount   int `json:"applicationCount,omitempty"`
	RecentApplications int `json:"recentApplications,omitempty"`
}
