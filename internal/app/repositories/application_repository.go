package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/pkg/apperrors"
	"github.com/yigit/internlink/internal/pkg/dberrors"
)

// IApplicationRepository defines the interface for application operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]models.Application, error)
	GetApplicantsByInternshipID(ctx context.Context, internshipID int64) ([]models.Applicant, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// ApplicationRepository handles application rows
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts an application. A second application from the same student
// to the same internship hits the unique constraint.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) (int64, error) {
	query := squirrel.Insert("applications").
		Columns("internship_id", "student_id", "cover_letter").
		Values(application.InternshipID, application.StudentID, application.CoverLetter).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_internship_id_student_id_key") {
			return 0, apperrors.ErrDuplicateApplication
		}
		return 0, fmt.Errorf("error creating application: %w", err)
	}
	return id, nil
}

// GetByID retrieves a single application row
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app := &models.Application{}
	err := r.db.QueryRow(ctx, `
		SELECT id, internship_id, student_id, status, cover_letter, created_at, updated_at
		FROM applications
		WHERE id = $1`,
		id).Scan(&app.ID, &app.InternshipID, &app.StudentID, &app.Status,
		&app.CoverLetter, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error querying application: %w", err)
	}
	return app, nil
}

// GetByStudentID retrieves a student's applications joined with the
// internship and company info, newest first.
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.internship_id, a.student_id, a.status, a.cover_letter,
			a.created_at, a.updated_at,
			i.title, i.location, i.type, i.deadline, c.company_name
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN companies c ON c.id = i.company_id
		WHERE a.student_id = $1
		ORDER BY a.created_at DESC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	var applications []models.Application
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.InternshipID, &a.StudentID, &a.Status,
			&a.CoverLetter, &a.CreatedAt, &a.UpdatedAt,
			&a.InternshipTitle, &a.InternshipLocation, &a.InternshipType,
			&a.InternshipDeadline, &a.CompanyName); err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// GetApplicantsByInternshipID retrieves the applications for an internship
// joined with each applicant's profile and account email.
func (r *ApplicationRepository) GetApplicantsByInternshipID(ctx context.Context, internshipID int64) ([]models.Applicant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.internship_id, a.student_id, a.status, a.cover_letter,
			a.created_at, a.updated_at,
			s.first_name, s.last_name, s.university, s.major,
			s.resume_url, s.resume_filename, s.user_id, u.email
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = s.user_id
		WHERE a.internship_id = $1
		ORDER BY a.created_at DESC`,
		internshipID)
	if err != nil {
		return nil, fmt.Errorf("error querying applicants: %w", err)
	}
	defer rows.Close()

	var applicants []models.Applicant
	for rows.Next() {
		var ap models.Applicant
		if err := rows.Scan(&ap.ID, &ap.InternshipID, &ap.StudentID,
			&ap.Status, &ap.CoverLetter, &ap.CreatedAt, &ap.UpdatedAt,
			&ap.FirstName, &ap.LastName, &ap.University, &ap.Major,
			&ap.ResumeURL, &ap.ResumeFilename, &ap.UserID, &ap.Email); err != nil {
			return nil, fmt.Errorf("error scanning applicant: %w", err)
		}
		applicants = append(applicants, ap)
	}
	return applicants, rows.Err()
}

// UpdateStatus changes the status of an application
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE applications
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
