package auth

import (
	"context"
	"errors"

	"github.com/yigit/internlink/internal/app/repositories"
	"github.com/yigit/internlink/internal/pkg/apperrors"
	"github.com/yigit/internlink/internal/pkg/logger"
)

// Denial messages. The internship message is the same whether the resource
// belongs to another company or does not exist at all, so probing with ids
// reveals nothing.
const (
	MsgInternshipAccessDenied  = "You do not have access to this internship."
	MsgApplicationAccessDenied = "You do not have access to this application."
	MsgCompanyProfileNotFound  = "Company profile not found."
	MsgStudentProfileNotFound  = "Student profile not found."
)

// AuthorizationService resolves resource ownership for company and student
// scoped endpoints.
type AuthorizationService struct {
	companyRepo     repositories.ICompanyRepository
	studentRepo     repositories.IStudentRepository
	internshipRepo  repositories.IInternshipRepository
	applicationRepo repositories.IApplicationRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	companyRepo repositories.ICompanyRepository,
	studentRepo repositories.IStudentRepository,
	internshipRepo repositories.IInternshipRepository,
	applicationRepo repositories.IApplicationRepository,
) *AuthorizationService {
	return &AuthorizationService{
		companyRepo:     companyRepo,
		studentRepo:     studentRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
	}
}

// ResolveCompany returns the company profile id for the calling user.
// A company account without a profile row gets a profile-specific denial.
func (s *AuthorizationService) ResolveCompany(ctx context.Context, userID int64) (int64, error) {
	company, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyProfileNotFound) {
			return 0, apperrors.NewForbiddenError(MsgCompanyProfileNotFound)
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to resolve company profile")
		return 0, err
	}
	return company.ID, nil
}

// ResolveStudent returns the student profile id for the calling user
func (s *AuthorizationService) ResolveStudent(ctx context.Context, userID int64) (int64, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentProfileNotFound) {
			return 0, apperrors.NewForbiddenError(MsgStudentProfileNotFound)
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to resolve student profile")
		return 0, err
	}
	return student.ID, nil
}

// ValidateInternshipOwnership checks that the calling company user owns the
// internship. A nonexistent internship and another company's internship both
// produce the same denial.
func (s *AuthorizationService) ValidateInternshipOwnership(ctx context.Context, userID, internshipID int64) (int64, error) {
	companyID, err := s.ResolveCompany(ctx, userID)
	if err != nil {
		return 0, err
	}

	ownerID, err := s.internshipRepo.GetOwnerCompanyID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInternshipNotFound) {
			return 0, apperrors.NewForbiddenError(MsgInternshipAccessDenied)
		}
		return 0, err
	}

	if ownerID != companyID {
		return 0, apperrors.NewForbiddenError(MsgInternshipAccessDenied)
	}
	return companyID, nil
}

// ValidateApplicationOwnership checks that the calling company user owns the
// internship the application was submitted to.
func (s *AuthorizationService) ValidateApplicationOwnership(ctx context.Context, userID, applicationID int64) error {
	companyID, err := s.ResolveCompany(ctx, userID)
	if err != nil {
		return err
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return apperrors.NewForbiddenError(MsgApplicationAccessDenied)
		}
		return err
	}

	ownerID, err := s.internshipRepo.GetOwnerCompanyID(ctx, application.InternshipID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInternshipNotFound) {
			return apperrors.NewForbiddenError(MsgApplicationAccessDenied)
		}
		return err
	}

	if ownerID != companyID {
		return apperrors.NewForbiddenError(MsgApplicationAccessDenied)
	}
	return nil
}
