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

// ICompanyRepository defines the interface for company profile operations
type ICompanyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, company *models.Company) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context) ([]models.Company, error)
	UpdateColumns(ctx context.Context, userID int64, columns map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// CompanyRepository handles company profile rows
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, user_id, company_name, industry, website, location,
	company_size, company_logo_url, about, created_at, updated_at`

func scanCompany(row pgx.Row) (*models.Company, error) {
	company := &models.Company{}
	err := row.Scan(&company.ID, &company.UserID, &company.CompanyName,
		&company.Industry, &company.Website, &company.Location,
		&company.CompanySize, &company.CompanyLogoURL, &company.About,
		&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return company, nil
}

// Create inserts a company profile row inside the given transaction
func (r *CompanyRepository) Create(ctx context.Context, tx pgx.Tx, company *models.Company) (int64, error) {
	query := squirrel.Insert("companies").
		Columns("user_id", "company_name", "about").
		Values(company.UserID, company.CompanyName, company.About).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating company profile: %w", err)
	}
	return id, nil
}

// GetByUserID retrieves a company profile by the owning user's id
func (r *CompanyRepository) GetByUserID(ctx context.Context, userID int64) (*models.Company, error) {
	company, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyProfileNotFound
		}
		return nil, fmt.Errorf("error querying company: %w", err)
	}
	return company, nil
}

// GetByID retrieves a company profile by its own id
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyProfileNotFound
		}
		return nil, fmt.Errorf("error querying company: %w", err)
	}
	return company, nil
}

// GetAll retrieves all company profiles with the owning user's email
func (r *CompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.user_id, c.company_name, c.industry, c.website,
			c.location, c.company_size, c.company_logo_url, c.about,
			c.created_at, c.updated_at, u.email, u.role
		FROM companies c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		var user models.User
		if err := rows.Scan(&c.ID, &c.UserID, &c.CompanyName, &c.Industry,
			&c.Website, &c.Location, &c.CompanySize, &c.CompanyLogoURL,
			&c.About, &c.CreatedAt, &c.UpdatedAt, &user.Email, &user.Role); err != nil {
			return nil, fmt.Errorf("error scanning company: %w", err)
		}
		user.ID = c.UserID
		c.User = &user
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// UpdateColumns applies a partial update. The caller guarantees the map is
// not empty and only contains known column names.
func (r *CompanyRepository) UpdateColumns(ctx context.Context, userID int64, columns map[string]interface{}) error {
	query := squirrel.Update("companies").
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
		return fmt.Errorf("error updating company profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyProfileNotFound
	}
	return nil
}

// Delete removes a company profile; its internships cascade
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyProfileNotFound
	}
	return nil
}
