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

// IStudentRepository defines the interface for student profile operations
type IStudentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	UpdateColumns(ctx context.Context, userID int64, columns map[string]interface{}) error
	SetResume(ctx context.Context, userID int64, resumeURL, resumeFilename string) error
}

// StudentRepository handles student profile rows
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `id, user_id, first_name, last_name, phone, university,
	major, graduation_year, bio, resume_url, resume_filename,
	profile_picture_url, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.UserID, &student.FirstName,
		&student.LastName, &student.Phone, &student.University, &student.Major,
		&student.GraduationYear, &student.Bio, &student.ResumeURL,
		&student.ResumeFilename, &student.ProfilePictureURL,
		&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a student profile row inside the given transaction
func (r *StudentRepository) Create(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	query := squirrel.Insert("students").
		Columns("user_id", "first_name", "last_name").
		Values(student.UserID, student.FirstName, student.LastName).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating student profile: %w", err)
	}
	return id, nil
}

// GetByUserID retrieves a student profile by the owning user's id
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		return nil, fmt.Errorf("error querying student: %w", err)
	}
	return student, nil
}

// GetAll retrieves all student profiles with the owning user's email
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.first_name, s.last_name, s.phone,
			s.university, s.major, s.graduation_year, s.bio, s.resume_url,
			s.resume_filename, s.profile_picture_url, s.created_at, s.updated_at,
			u.email, u.role
		FROM students s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		var user models.User
		if err := rows.Scan(&s.ID, &s.UserID, &s.FirstName, &s.LastName,
			&s.Phone, &s.University, &s.Major, &s.GraduationYear, &s.Bio,
			&s.ResumeURL, &s.ResumeFilename, &s.ProfilePictureURL,
			&s.CreatedAt, &s.UpdatedAt, &user.Email, &user.Role); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		user.ID = s.UserID
		s.User = &user
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpdateColumns applies a partial update. The caller guarantees the map is
// not empty and only contains known column names.
func (r *StudentRepository) UpdateColumns(ctx context.Context, userID int64, columns map[string]interface{}) error {
	query := squirrel.Update("students").
		SetMap(columns).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentProfileNotFound
	}
	return nil
}

// SetResume records the stored resume URL and the original filename
func (r *StudentRepository) SetResume(ctx context.Context, userID int64, resumeURL, resumeFilename string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET resume_url = $1, resume_filename = $2, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $3`,
		resumeURL, resumeFilename, userID)
	if err != nil {
		return fmt.Errorf("error saving resume reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentProfileNotFound
	}
	return nil
}
