package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/internlink/internal/app/auth"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/services"
	"github.com/yigit/internlink/internal/pkg/apperrors"
)

type internshipFixture struct {
	studentRepo     *fakeStudentRepo
	companyRepo     *fakeCompanyRepo
	internshipRepo  *fakeInternshipRepo
	applicationRepo *fakeApplicationRepo
	service         *services.InternshipService
}

func newInternshipFixture() *internshipFixture {
	f := &internshipFixture{
		studentRepo:     newFakeStudentRepo(),
		companyRepo:     newFakeCompanyRepo(),
		internshipRepo:  newFakeInternshipRepo(),
		applicationRepo: newFakeApplicationRepo(),
	}
	authz := appauth.NewAuthorizationService(f.companyRepo, f.studentRepo, f.internshipRepo, f.applicationRepo)
	f.service = services.NewInternshipService(f.internshipRepo, f.applicationRepo, authz, zerolog.Nop())
	return f
}

// addCompany registers a company profile for the given user id
func (f *internshipFixture) addCompany(userID int64, name string) int64 {
	id, _ := f.companyRepo.Create(context.Background(), nil, &models.Company{UserID: userID, CompanyName: name})
	return id
}

func TestCreateInternshipStartsPending(t *testing.T) {
	f := newInternshipFixture()
	f.addCompany(10, "Acme")

	created, err := f.service.Create(context.Background(), 10, &dto.CreateInternshipRequest{Title: "Backend Intern"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != models.InternshipPending {
		t.Errorf("new internship should be pending, got %q", created.Status)
	}
}

func TestPendingInternshipNotInPublicListing(t *testing.T) {
	f := newInternshipFixture()
	f.addCompany(10, "Acme")

	if _, err := f.service.Create(context.Background(), 10, &dto.CreateInternshipRequest{Title: "Hidden"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	listing, err := f.service.GetPublicListing(context.Background())
	if err != nil {
		t.Fatalf("GetPublicListing returned error: %v", err)
	}
	if len(listing) != 0 {
		t.Errorf("pending internships must not be publicly listed, got %d entries", len(listing))
	}

	// After approval it shows up
	in, _ := f.internshipRepo.GetAll(context.Background())
	f.internshipRepo.UpdateStatus(context.Background(), in[0].ID, models.InternshipApproved)

	listing, _ = f.service.GetPublicListing(context.Background())
	if len(listing) != 1 {
		t.Errorf("approved internship should be listed, got %d entries", len(listing))
	}
}

func TestUpdateDeniedForNonOwner(t *testing.T) {
	f := newInternshipFixture()
	f.addCompany(10, "Acme")
	f.addCompany(20, "Rival")

	created, err := f.service.Create(context.Background(), 10, &dto.CreateInternshipRequest{Title: "Backend Intern"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = f.service.Update(context.Background(), 20, created.ID, &dto.UpdateInternshipRequest{Title: "Hijacked"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for non-owner, got %v", err)
	}
	if msg := apperrors.MessageOr(err, ""); msg != appauth.MsgInternshipAccessDenied {
		t.Errorf("unexpected denial message: %q", msg)
	}
}

func TestUpdateDenialDoesNotRevealExistence(t *testing.T) {
	f := newInternshipFixture()
	f.addCompany(10, "Acme")

	_, err := f.service.Update(context.Background(), 10, 999, &dto.UpdateInternshipRequest{Title: "X"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for missing internship, got %v", err)
	}
	if msg := apperrors.MessageOr(err, ""); msg != appauth.MsgInternshipAccessDenied {
		t.Errorf("missing resource must use the same denial message, got %q", msg)
	}
}

func TestCreateWithoutCompanyProfile(t *testing.T) {
	f := newInternshipFixture()

	_, err := f.service.Create(context.Background(), 42, &dto.CreateInternshipRequest{Title: "X"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied without a company profile, got %v", err)
	}
	if msg := apperrors.MessageOr(err, ""); msg != appauth.MsgCompanyProfileNotFound {
		t.Errorf("expected profile-specific message, got %q", msg)
	}
}

func TestDeleteByOwner(t *testing.T) {
	f := newInternshipFixture()
	f.addCompany(10, "Acme")

	created, err := f.service.Create(context.Background(), 10, &dto.CreateInternshipRequest{Title: "Short-lived"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := f.service.Delete(context.Background(), 10, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := f.service.GetByID(context.Background(), created.ID); !errors.Is(err, apperrors.ErrInternshipNotFound) {
		t.Errorf("expected internship gone after delete, got %v", err)
	}
}

func TestGetApplicantsRequiresOwnership(t *testing.T) {
	f := newInternshipFixture()
	f.addCompany(10, "Acme")
	f.addCompany(20, "Rival")

	created, err := f.service.Create(context.Background(), 10, &dto.CreateInternshipRequest{Title: "Backend Intern"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := f.service.GetApplicants(context.Background(), 20, created.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("expected permission denied for non-owner applicant listing, got %v", err)
	}
	if _, err := f.service.GetApplicants(context.Background(), 10, created.ID); err != nil {
		t.Errorf("owner should list applicants, got %v", err)
	}
}
