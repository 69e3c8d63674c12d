package services

import (
	"context"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/internlink/internal/app/auth"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/repositories"
)

// InternshipService handles internship postings
type InternshipService struct {
	internshipRepo  repositories.IInternshipRepository
	applicationRepo repositories.IApplicationRepository
	authzService    *appauth.AuthorizationService
	logger          zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(
	internshipRepo repositories.IInternshipRepository,
	applicationRepo repositories.IApplicationRepository,
	authzService *appauth.AuthorizationService,
	logger zerolog.Logger,
) *InternshipService {
	return &InternshipService{
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		authzService:    authzService,
		logger:          logger,
	}
}

// GetPublicListing returns approved internships only. Pending and rejected
// postings never appear here.
func (s *InternshipService) GetPublicListing(ctx context.Context) ([]models.Internship, error) {
	return s.internshipRepo.GetApproved(ctx)
}

// GetByID returns a single internship
func (s *InternshipService) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	return s.internshipRepo.GetByID(ctx, id)
}

// Create posts a new internship for the calling company user. New postings
// always start out pending moderation.
func (s *InternshipService) Create(ctx context.Context, userID int64, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	companyID, err := s.authzService.ResolveCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	internship := &models.Internship{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Type:         req.Type,
		Duration:     req.Duration,
		IsRemote:     req.IsRemote,
		Deadline:     req.Deadline.TimeValue(),
	}

	id, err := s.internshipRepo.Create(ctx, internship)
	if err != nil {
		s.logger.Error().Err(err).Int64("companyID", companyID).Msg("Failed to create internship")
		return nil, err
	}

	return s.internshipRepo.GetByID(ctx, id)
}

// GetCompanyListing returns the calling company's own postings with their
// application counters.
func (s *InternshipService) GetCompanyListing(ctx context.Context, userID int64) ([]models.Internship, error) {
	companyID, err := s.authzService.ResolveCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.internshipRepo.GetByCompanyID(ctx, companyID)
}

// Update edits an internship owned by the calling company user
func (s *InternshipService) Update(ctx context.Context, userID, id int64, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	if _, err := s.authzService.ValidateInternshipOwnership(ctx, userID, id); err != nil {
		return nil, err
	}

	internship := &models.Internship{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Type:         req.Type,
		Duration:     req.Duration,
		IsRemote:     req.IsRemote,
		Deadline:     req.Deadline.TimeValue(),
	}

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return s.internshipRepo.GetByID(ctx, id)
}

// UpdateStatus changes the status of an internship owned by the caller
func (s *InternshipService) UpdateStatus(ctx context.Context, userID, id int64, status models.InternshipStatus) error {
	if _, err := s.authzService.ValidateInternshipOwnership(ctx, userID, id); err != nil {
		return err
	}
	return s.internshipRepo.UpdateStatus(ctx, id, status)
}

// Delete removes an internship owned by the caller
func (s *InternshipService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.authzService.ValidateInternshipOwnership(ctx, userID, id); err != nil {
		return err
	}
	return s.internshipRepo.Delete(ctx, id)
}

// GetApplicants lists the applications for an internship owned by the caller
func (s *InternshipService) GetApplicants(ctx context.Context, userID, id int64) ([]models.Applicant, error) {
	if _, err := s.authzService.ValidateInternshipOwnership(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.applicationRepo.GetApplicantsByInternshipID(ctx, id)
}
