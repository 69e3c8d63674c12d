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
)

// IInternshipRepository defines the interface for internship operations
type IInternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	GetApproved(ctx context.Context) ([]models.Internship, error)
	GetAll(ctx context.Context) ([]models.Internship, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]models.Internship, error)
	GetOwnerCompanyID(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, internship *models.Internship) error
	UpdateStatus(ctx context.Context, id int64, status models.InternshipStatus) error
	Delete(ctx context.Context, id int64) error
}

// InternshipRepository handles internship rows
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

const internshipJoined = `
	SELECT i.id, i.company_id, i.title, i.description, i.requirements,
		i.location, i.type, i.duration, i.is_remote, i.deadline, i.status,
		i.posted_at, i.updated_at, c.company_name
	FROM internships i
	JOIN companies c ON c.id = i.company_id`

func scanInternship(row pgx.Row) (*models.Internship, error) {
	in := &models.Internship{}
	err := row.Scan(&in.ID, &in.CompanyID, &in.Title, &in.Description,
		&in.Requirements, &in.Location, &in.Type, &in.Duration, &in.IsRemote,
		&in.Deadline, &in.Status, &in.PostedAt, &in.UpdatedAt, &in.CompanyName)
	if err != nil {
		return nil, err
	}
	return in, nil
}

func collectInternships(rows pgx.Rows) ([]models.Internship, error) {
	defer rows.Close()

	var internships []models.Internship
	for rows.Next() {
		in, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning internship: %w", err)
		}
		internships = append(internships, *in)
	}
	return internships, rows.Err()
}

// Create inserts a new internship; status defaults to pending
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) (int64, error) {
	query := squirrel.Insert("internships").
		Columns("company_id", "title", "description", "requirements",
			"location", "type", "duration", "is_remote", "deadline", "status").
		Values(internship.CompanyID, internship.Title, internship.Description,
			internship.Requirements, internship.Location, internship.Type,
			internship.Duration, internship.IsRemote, internship.Deadline,
			models.InternshipPending).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating internship: %w", err)
	}
	return id, nil
}

// GetByID retrieves a single internship with its company name
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	in, err := scanInternship(r.db.QueryRow(ctx, internshipJoined+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error querying internship: %w", err)
	}
	return in, nil
}

// GetApproved retrieves the public listing, newest first
func (r *InternshipRepository) GetApproved(ctx context.Context) ([]models.Internship, error) {
	rows, err := r.db.Query(ctx,
		internshipJoined+` WHERE i.status = $1 ORDER BY i.posted_at DESC`,
		models.InternshipApproved)
	if err != nil {
		return nil, fmt.Errorf("error querying internships: %w", err)
	}
	return collectInternships(rows)
}

// GetAll retrieves every internship regardless of status
func (r *InternshipRepository) GetAll(ctx context.Context) ([]models.Internship, error) {
	rows, err := r.db.Query(ctx, internshipJoined+` ORDER BY i.posted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying internships: %w", err)
	}
	return collectInternships(rows)
}

// GetByCompanyID retrieves a company's own postings annotated with the total
// application count and the count of applications from the last 7 days.
func (r *InternshipRepository) GetByCompanyID(ctx context.Context, companyID int64) ([]models.Internship, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.company_id, i.title, i.description, i.requirements,
			i.location, i.type, i.duration, i.is_remote, i.deadline, i.status,
			i.posted_at, i.updated_at, c.company_name,
			COUNT(a.id) AS application_count,
			COUNT(a.id) FILTER (WHERE a.created_at >= NOW() - INTERVAL '7 days') AS recent_applications
		FROM internships i
		JOIN companies c ON c.id = i.company_id
		LEFT JOIN applications a ON a.internship_id = i.id
		WHERE i.company_id = $1
		GROUP BY i.id, c.company_name
		ORDER BY i.posted_at DESC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("error querying company internships: %w", err)
	}
	defer rows.Close()

	var internships []models.Internship
	for rows.Next() {
		var in models.Internship
		if err := rows.Scan(&in.ID, &in.CompanyID, &in.Title, &in.Description,
			&in.Requirements, &in.Location, &in.Type, &in.Duration,
			&in.IsRemote, &in.Deadline, &in.Status, &in.PostedAt,
			&in.UpdatedAt, &in.CompanyName, &in.ApplicationCount,
			&in.RecentApplications); err != nil {
			return nil, fmt.Errorf("error scanning internship: %w", err)
		}
		internships = append(internships, in)
	}
	return internships, rows.Err()
}

// GetOwnerCompanyID resolves the company that owns an internship
func (r *InternshipRepository) GetOwnerCompanyID(ctx context.Context, id int64) (int64, error) {
	var companyID int64
	err := r.db.QueryRow(ctx,
		`SELECT company_id FROM internships WHERE id = $1`, id).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrInternshipNotFound
		}
		return 0, fmt.Errorf("error querying internship owner: %w", err)
	}
	return companyID, nil
}

// Update replaces the editable columns of an internship
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	query := squirrel.Update("internships").
		Set("title", internship.Title).
		Set("description", internship.Description).
		Set("requirements", internship.Requirements).
		Set("location", internship.Location).
		Set("type", internship.Type).
		Set("duration", internship.Duration).
		Set("is_remote", internship.IsRemote).
		Set("deadline", internship.Deadline).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", internship.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// UpdateStatus changes the status column
func (r *InternshipRepository) UpdateStatus(ctx context.Context, id int64, status models.InternshipStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE internships
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating internship status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// Delete removes an internship; its applications cascade
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM internships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}
