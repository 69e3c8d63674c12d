package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/repositories"
	"github.com/yigit/internlink/internal/pkg/apperrors"
)

// ProfileService handles student and company profile reads and patches
type ProfileService struct {
	studentRepo repositories.IStudentRepository
	companyRepo repositories.ICompanyRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	studentRepo repositories.IStudentRepository,
	companyRepo repositories.ICompanyRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetStudentProfile returns the calling student's profile with account info
func (s *ProfileService) GetStudentProfile(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	student.User = user
	return student, nil
}

// UpdateStudentProfile applies a partial update. A patch with no fields set
// is rejected rather than silently succeeding.
func (s *ProfileService) UpdateStudentProfile(ctx context.Context, userID int64, patch *dto.StudentProfilePatch) (*models.Student, error) {
	columns := patch.Columns()
	if len(columns) == 0 {
		return nil, apperrors.ErrNoFieldsProvided
	}

	if err := s.studentRepo.UpdateColumns(ctx, userID, columns); err != nil {
		return nil, err
	}
	return s.GetStudentProfile(ctx, userID)
}

// GetCompanyProfile returns the calling company's profile with account info
func (s *ProfileService) GetCompanyProfile(ctx context.Context, userID int64) (*models.Company, error) {
	company, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	company.User = user
	return company, nil
}

// UpdateCompanyProfile applies a partial update to the company profile
func (s *ProfileService) UpdateCompanyProfile(ctx context.Context, userID int64, patch *dto.CompanyProfilePatch) (*models.Company, error) {
	columns := patch.Columns()
	if len(columns) == 0 {
		return nil, apperrors.ErrNoFieldsProvided
	}

	if err := s.companyRepo.UpdateColumns(ctx, userID, columns); err != nil {
		return nil, err
	}
	return s.GetCompanyProfile(ctx, userID)
}
