package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/repositories"
	"github.com/yigit/internlink/internal/db"
	"github.com/yigit/internlink/internal/pkg/apperrors"
	"github.com/yigit/internlink/internal/pkg/auth"
	"github.com/yigit/internlink/internal/pkg/filestorage"
)

// Transactor runs a function inside a database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// AuthService handles registration, login and resume storage
type AuthService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	companyRepo repositories.ICompanyRepository
	jwtService  *auth.JWTService
	storage     filestorage.FileStorage
	tx          Transactor
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	companyRepo repositories.ICompanyRepository,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
	tx Transactor,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		jwtService:  jwtService,
		storage:     storage,
		tx:          tx,
		logger:      logger,
	}
}

// Register creates a user account together with its role profile row and
// returns a fresh token so the client is logged in immediately.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.Role(req.Role)

	switch role {
	case models.RoleStudent:
		if req.FirstName == "" || req.LastName == "" {
			return nil, apperrors.NewBadRequestError("First name and last name are required for student accounts.")
		}
	case models.RoleCompany:
		if req.CompanyName == "" {
			return nil, apperrors.NewBadRequestError("Company name is required for company accounts.")
		}
	default:
		return nil, apperrors.ErrInvalidRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		id, err := s.userRepo.Create(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = id

		switch role {
		case models.RoleStudent:
			student := &models.Student{
				UserID:    id,
				FirstName: req.FirstName,
				LastName:  req.LastName,
			}
			_, err = s.studentRepo.Create(ctx, tx, student)
		case models.RoleCompany:
			company := &models.Company{
				UserID:      id,
				CompanyName: req.CompanyName,
			}
			if req.About != "" {
				company.About = &req.About
			}
			_, err = s.companyRepo.Create(ctx, tx, company)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("An account with this email already exists.")
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Registration failed")
		return nil, err
	}

	display := auth.DisplayClaims{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
	}
	return s.buildAuthResponse(user, display)
}

// Login authenticates a user. Unknown email and wrong password are
// indistinguishable in the response.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	display, err := s.displayFields(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.buildAuthResponse(user, display)
}

// displayFields loads the role-specific name fields for the token claims
func (s *AuthService) displayFields(ctx context.Context, user *models.User) (auth.DisplayClaims, error) {
	var display auth.DisplayClaims

	switch user.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentProfileNotFound) {
				return display, nil
			}
			return display, err
		}
		display.FirstName = student.FirstName
		display.LastName = student.LastName
	case models.RoleCompany:
		company, err := s.companyRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCompanyProfileNotFound) {
				return display, nil
			}
			return display, err
		}
		display.CompanyName = company.CompanyName
	}
	return display, nil
}

func (s *AuthService) buildAuthResponse(user *models.User, display auth.DisplayClaims) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user, display)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(expiresIn),
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			Role:        string(user.Role),
			FirstName:   display.FirstName,
			LastName:    display.LastName,
			CompanyName: display.CompanyName,
		},
	}, nil
}

// UploadResume stores the file and records its public URL together with the
// original filename on the student row.
func (s *AuthService) UploadResume(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.ResumeResponse, error) {
	// The profile must exist before anything touches the disk
	if _, err := s.studentRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	url, err := s.storage.Save(fileHeader, "resumes")
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to store resume")
		return nil, err
	}

	if err := s.studentRepo.SetResume(ctx, userID, url, fileHeader.Filename); err != nil {
		return nil, err
	}

	return &dto.ResumeResponse{URL: url, Filename: fileHeader.Filename}, nil
}

// GetResume returns the stored resume reference for a student's user id
func (s *AuthService) GetResume(ctx context.Context, userID int64) (*dto.ResumeResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student.ResumeURL == nil || student.ResumeFilename == nil {
		return nil, apperrors.ErrResumeNotFound
	}
	return &dto.ResumeResponse{URL: *student.ResumeURL, Filename: *student.ResumeFilename}, nil
}

// ResolveResumeFile returns the on-disk path and the original filename for a
// student's resume, for download streaming.
func (s *AuthService) ResolveResumeFile(ctx context.Context, userID int64) (path, filename string, err error) {
	resume, err := s.GetResume(ctx, userID)
	if err != nil {
		return "", "", err
	}

	path = s.storage.Resolve(resume.URL)
	if path == "" {
		return "", "", apperrors.ErrResumeNotFound
	}
	return path, resume.Filename, nil
}
