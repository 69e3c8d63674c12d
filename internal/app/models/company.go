package models

import "time"

// Company defines the company profile based on the 'companies' table
type Company struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	CompanyName    string    `json:"companyName" db:"company_name"`
	Industry       *string   `json:"industry,omitempty" db:"industry"`
	Website        *string   `json:"website,omitempty" db:"website"`
	Location       *string   `json:"location,omitempty" db:"location"`
	CompanySize    *string   `json:"companySize,omitempty" db:"company_size"`
	CompanyLogoURL *string   `json:"companyLogoUrl,omitempty" db:"company_logo_url"`
	About          *string   `json:"about,omitempty" db:"about"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Relation, populated when needed
	User *User `json:"user,omitempty"`
}
