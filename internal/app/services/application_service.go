package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/internlink/internal/app/auth"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/repositories"
	"github.com/yigit/internlink/internal/pkg/apperrors"
)

// Application statuses a company can set
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// ApplicationService handles student applications
type ApplicationService struct {
	applicationRepo repositories.IApplicationRepository
	internshipRepo  repositories.IInternshipRepository
	authzService    *appauth.AuthorizationService
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	internshipRepo repositories.IInternshipRepository,
	authzService *appauth.AuthorizationService,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		authzService:    authzService,
		logger:          logger,
	}
}

// Apply submits an application for the calling student. A repeat application
// to the same internship is rejected by the unique constraint.
func (s *ApplicationService) Apply(ctx context.Context, userID, internshipID int64, req *dto.ApplyRequest) (*models.Application, error) {
	studentID, err := s.authzService.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.internshipRepo.GetOwnerCompanyID(ctx, internshipID); err != nil {
		return nil, err
	}

	application := &models.Application{
		InternshipID: internshipID,
		StudentID:    studentID,
		CoverLetter:  req.CoverLetter,
	}

	id, err := s.applicationRepo.Create(ctx, application)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateApplication) {
			return nil, apperrors.NewConflictError("You have already applied to this internship.")
		}
		s.logger.Error().Err(err).Int64("studentID", studentID).Int64("internshipID", internshipID).Msg("Failed to create application")
		return nil, err
	}

	return s.applicationRepo.GetByID(ctx, id)
}

// GetStudentListing returns the calling student's applications with the
// internship and company info joined in.
func (s *ApplicationService) GetStudentListing(ctx context.Context, userID int64) ([]models.Application, error) {
	studentID, err := s.authzService.ResolveStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByStudentID(ctx, studentID)
}

// UpdateStatus lets the owning company move an application through its
// review states.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, applicationID int64, status string) (*models.Application, error) {
	if err := s.authzService.ValidateApplicationOwnership(ctx, userID, applicationID); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	return s.applicationRepo.GetByID(ctx, applicationID)
}
