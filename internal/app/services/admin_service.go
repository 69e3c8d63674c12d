package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/repositories"
	"github.com/yigit/internlink/internal/pkg/apperrors"
)

// AdminService handles moderation and account administration
type AdminService struct {
	userRepo       repositories.IUserRepository
	studentRepo    repositories.IStudentRepository
	companyRepo    repositories.ICompanyRepository
	internshipRepo repositories.IInternshipRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	companyRepo repositories.ICompanyRepository,
	internshipRepo repositories.IInternshipRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		userRepo:       userRepo,
		studentRepo:    studentRepo,
		companyRepo:    companyRepo,
		internshipRepo: internshipRepo,
		logger:         logger,
	}
}

// GetUsers lists all user accounts
func (s *AdminService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetStudents lists all student profiles
func (s *AdminService) GetStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetCompanies lists all company profiles
func (s *AdminService) GetCompanies(ctx context.Context) ([]models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

// GetInternships lists every internship regardless of status
func (s *AdminService) GetInternships(ctx context.Context) ([]models.Internship, error) {
	return s.internshipRepo.GetAll(ctx)
}

// DeleteUser removes a user account; profile rows cascade
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Msg("User deleted by admin")
	return nil
}

// DeleteCompany removes a company profile; its internships cascade
func (s *AdminService) DeleteCompany(ctx context.Context, id int64) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("companyID", id).Msg("Company deleted by admin")
	return nil
}

// DeleteInternship removes any internship
func (s *AdminService) DeleteInternship(ctx context.Context, id int64) error {
	if err := s.internshipRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("internshipID", id).Msg("Internship deleted by admin")
	return nil
}

// ApproveInternship moves a pending internship to the public listing
func (s *AdminService) ApproveInternship(ctx context.Context, id int64) error {
	return s.internshipRepo.UpdateStatus(ctx, id, models.InternshipApproved)
}

// RejectInternship marks an internship as rejected
func (s *AdminService) RejectInternship(ctx context.Context, id int64) error {
	return s.internshipRepo.UpdateStatus(ctx, id, models.InternshipRejected)
}

// ChangeUserRole updates an account's role
func (s *AdminService) ChangeUserRole(ctx context.Context, id int64, role models.Role) error {
	if !role.IsValid() {
		return apperrors.ErrInvalidRole
	}
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User role changed by admin")
	return nil
}
