package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/services"
	"github.com/yigit/internlink/internal/pkg/apperrors"
)

type profileFixture struct {
	userRepo    *fakeUserRepo
	studentRepo *fakeStudentRepo
	companyRepo *fakeCompanyRepo
	service     *services.ProfileService
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		userRepo:    newFakeUserRepo(),
		studentRepo: newFakeStudentRepo(),
		companyRepo: newFakeCompanyRepo(),
	}
	f.service = services.NewProfileService(f.studentRepo, f.companyRepo, f.userRepo, zerolog.Nop())
	return f
}

func (f *profileFixture) addStudentAccount(email string) int64 {
	userID, _ := f.userRepo.Create(context.Background(), nil, &models.User{Email: email, Role: models.RoleStudent})
	f.studentRepo.Create(context.Background(), nil, &models.Student{UserID: userID, FirstName: "Grace", LastName: "Hopper"})
	return userID
}

func (f *profileFixture) addCompanyAccount(email string) int64 {
	userID, _ := f.userRepo.Create(context.Background(), nil, &models.User{Email: email, Role: models.RoleCompany})
	f.companyRepo.Create(context.Background(), nil, &models.Company{UserID: userID, CompanyName: "Initech"})
	return userID
}

func TestGetStudentProfileIncludesAccount(t *testing.T) {
	f := newProfileFixture()
	userID := f.addStudentAccount("grace@example.com")

	student, err := f.service.GetStudentProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetStudentProfile returned error: %v", err)
	}
	if student.User == nil || student.User.Email != "grace@example.com" {
		t.Errorf("profile should embed the account, got %+v", student.User)
	}
}

func TestUpdateStudentProfileEmptyPatch(t *testing.T) {
	f := newProfileFixture()
	userID := f.addStudentAccount("grace@example.com")

	_, err := f.service.UpdateStudentProfile(context.Background(), userID, &dto.StudentProfilePatch{})
	if !errors.Is(err, apperrors.ErrNoFieldsProvided) {
		t.Errorf("expected ErrNoFieldsProvided, got %v", err)
	}
}

func TestUpdateStudentProfileSingleField(t *testing.T) {
	f := newProfileFixture()
	userID := f.addStudentAccount("grace@example.com")

	university := "MIT"
	student, err := f.service.UpdateStudentProfile(context.Background(), userID, &dto.StudentProfilePatch{University: &university})
	if err != nil {
		t.Fatalf("UpdateStudentProfile returned error: %v", err)
	}
	if len(f.studentRepo.lastColumns) != 1 {
		t.Errorf("patch with one field should write one column, got %v", f.studentRepo.lastColumns)
	}
	if student.University == nil || *student.University != "MIT" {
		t.Errorf("expected university MIT, got %v", student.University)
	}
	if student.FirstName != "Grace" {
		t.Errorf("untouched field changed: %q", student.FirstName)
	}
}

func TestUpdateStudentProfileMissing(t *testing.T) {
	f := newProfileFixture()

	name := "Nobody"
	_, err := f.service.UpdateStudentProfile(context.Background(), 42, &dto.StudentProfilePatch{FirstName: &name})
	if !errors.Is(err, apperrors.ErrStudentProfileNotFound) {
		t.Errorf("expected ErrStudentProfileNotFound, got %v", err)
	}
}

func TestUpdateCompanyProfileEmptyPatch(t *testing.T) {
	f := newProfileFixture()
	userID := f.addCompanyAccount("hr@initech.example")

	_, err := f.service.UpdateCompanyProfile(context.Background(), userID, &dto.CompanyProfilePatch{})
	if !errors.Is(err, apperrors.ErrNoFieldsProvided) {
		t.Errorf("expected ErrNoFieldsProvided, got %v", err)
	}
}

func TestUpdateCompanyProfileSingleField(t *testing.T) {
	f := newProfileFixture()
	userID := f.addCompanyAccount("hr@initech.example")

	name := "Initrode"
	company, err := f.service.UpdateCompanyProfile(context.Background(), userID, &dto.CompanyProfilePatch{CompanyName: &name})
	if err != nil {
		t.Fatalf("UpdateCompanyProfile returned error: %v", err)
	}
	if len(f.companyRepo.lastColumns) != 1 {
		t.Errorf("patch with one field should write one column, got %v", f.companyRepo.lastColumns)
	}
	if company.CompanyName != "Initrode" {
		t.Errorf("expected company name Initrode, got %q", company.CompanyName)
	}
	if company.User == nil || company.User.Email != "hr@initech.example" {
		t.Errorf("profile should embed the account, got %+v", company.User)
	}
}
