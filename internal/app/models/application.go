package models

import "time"

// Application links a student to an internship. At most one row exists per
// (internship_id, student_id) pair, enforced by a unique constraint.
type Application struct {
	ID           int64     `json:"id" db:"id"`
	InternshipID int64     `json:"internshipId" db:"internship_id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Status       string    `json:"status" db:"status"`
	CoverLetter  *string   `json:"coverLetter,omitempty" db:"cover_letter"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Joined internship/company info for the student's own listing
	InternshipTitle    string     `json:"title,omitempty"`
	InternshipLocation *string    `json:"location,omitempty"`
	InternshipType     *string    `json:"type,omitempty"`
	InternshipDeadline *time.Time `json:"deadline,omitempty"`
	CompanyName        string     `json:"companyName,omitempty"`
}

// Applicant is an application row joined with the applying student's
// profile, as shown to the internship's owning company.
type Applicant struct {
	Application
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	University     *string `json:"university,omitempty"`
	Major          *string `json:"major,omitempty"`
	ResumeURL      *string `json:"resumeUrl,omitempty"`
	ResumeFilename *string `json:"resumeFilename,omitempty"`
	UserID         int64   `json:"userId"`
}
