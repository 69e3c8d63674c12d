package models

import "time"

// Student defines the student profile based on the 'students' table.
// Resume fields stay nil until the first upload.
type Student struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"userId" db:"user_id"`
	FirstName         string    `json:"firstName" db:"first_name"`
	LastName          string    `json:"lastName" db:"last_name"`
	Phone             *string   `json:"phone,omitempty" db:"phone"`
	University        *string   `json:"university,omitempty" db:"university"`
	Major             *string   `json:"major,omitempty" db:"major"`
	GraduationYear    *int      `json:"graduationYear,omitempty" db:"graduation_year"`
	Bio               *string   `json:"bio,omitempty" db:"bio"`
	ResumeURL         *string   `json:"resumeUrl,omitempty" db:"resume_url"`
	ResumeFilename    *string   `json:"resumeFilename,omitempty" db:"resume_filename"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty" db:"profile_picture_url"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`

	// Relation, populated when needed
	User *User `json:"user,omitempty"`
}
