package services_test

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/db"
	"github.com/yigit/internlink/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the error contracts of the real
// repositories so services can be exercised without a database.

type fakeTx struct{}

func (fakeTx) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[int64]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrUserAlreadyExists
		}
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	stored.CreatedAt = time.Now()
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeStudentRepo struct {
	nextID      int64
	students    map[int64]*models.Student // keyed by user id
	lastColumns map[string]interface{}
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1, students: map[int64]*models.Student{}}
}

func (r *fakeStudentRepo) Create(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *student
	stored.ID = id
	r.students[student.UserID] = &stored
	return id, nil
}

func (r *fakeStudentRepo) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	s, ok := r.students[userID]
	if !ok {
		return nil, apperrors.ErrStudentProfileNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeStudentRepo) GetAll(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	for _, s := range r.students {
		students = append(students, *s)
	}
	return students, nil
}

func (r *fakeStudentRepo) UpdateColumns(ctx context.Context, userID int64, columns map[string]interface{}) error {
	if _, ok := r.students[userID]; !ok {
		return apperrors.ErrStudentProfileNotFound
	}
	r.lastColumns = columns
	if v, ok := columns["first_name"].(string); ok {
		r.students[userID].FirstName = v
	}
	if v, ok := columns["university"].(string); ok {
		r.students[userID].University = &v
	}
	return nil
}

func (r *fakeStudentRepo) SetResume(ctx context.Context, userID int64, resumeURL, resumeFilename string) error {
	s, ok := r.students[userID]
	if !ok {
		return apperrors.ErrStudentProfileNotFound
	}
	s.ResumeURL = &resumeURL
	s.ResumeFilename = &resumeFilename
	return nil
}

type fakeCompanyRepo struct {
	nextID      int64
	companies   map[int64]*models.Company // keyed by user id
	lastColumns map[string]interface{}
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{nextID: 1, companies: map[int64]*models.Company{}}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, tx pgx.Tx, company *models.Company) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *company
	stored.ID = id
	r.companies[company.UserID] = &stored
	return id, nil
}

func (r *fakeCompanyRepo) GetByUserID(ctx context.Context, userID int64) (*models.Company, error) {
	c, ok := r.companies[userID]
	if !ok {
		return nil, apperrors.ErrCompanyProfileNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCompanyProfileNotFound
}

func (r *fakeCompanyRepo) GetAll(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	for _, c := range r.companies {
		companies = append(companies, *c)
	}
	return companies, nil
}

func (r *fakeCompanyRepo) UpdateColumns(ctx context.Context, userID int64, columns map[string]interface{}) error {
	if _, ok := r.companies[userID]; !ok {
		return apperrors.ErrCompanyProfileNotFound
	}
	r.lastColumns = columns
	if v, ok := columns["company_name"].(string); ok {
		r.companies[userID].CompanyName = v
	}
	return nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, id int64) error {
	for userID, c := range r.companies {
		if c.ID == id {
			delete(r.companies, userID)
			return nil
		}
	}
	return apperrors.ErrCompanyProfileNotFound
}

type fakeInternshipRepo struct {
	nextID      int64
	internships map[int64]*models.Internship
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{nextID: 1, internships: map[int64]*models.Internship{}}
}

func (r *fakeInternshipRepo) Create(ctx context.Context, internship *models.Internship) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *internship
	stored.ID = id
	stored.Status = models.InternshipPending
	stored.PostedAt = time.Now()
	r.internships[id] = &stored
	return id, nil
}

func (r *fakeInternshipRepo) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	in, ok := r.internships[id]
	if !ok {
		return nil, apperrors.ErrInternshipNotFound
	}
	copied := *in
	return &copied, nil
}

func (r *fakeInternshipRepo) GetApproved(ctx context.Context) ([]models.Internship, error) {
	var out []models.Internship
	for _, in := range r.internships {
		if in.Status == models.InternshipApproved {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (r *fakeInternshipRepo) GetAll(ctx context.Context) ([]models.Internship, error) {
	var out []models.Internship
	for _, in := range r.internships {
		out = append(out, *in)
	}
	return out, nil
}

func (r *fakeInternshipRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]models.Internship, error) {
	var out []models.Internship
	for _, in := range r.internships {
		if in.CompanyID == companyID {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (r *fakeInternshipRepo) GetOwnerCompanyID(ctx context.Context, id int64) (int64, error) {
	in, ok := r.internships[id]
	if !ok {
		return 0, apperrors.ErrInternshipNotFound
	}
	return in.CompanyID, nil
}

func (r *fakeInternshipRepo) Update(ctx context.Context, internship *models.Internship) error {
	in, ok := r.internships[internship.ID]
	if !ok {
		return apperrors.ErrInternshipNotFound
	}
	internship.CompanyID = in.CompanyID
	internship.Status = in.Status
	r.internships[internship.ID] = internship
	return nil
}

func (r *fakeInternshipRepo) UpdateStatus(ctx context.Context, id int64, status models.InternshipStatus) error {
	in, ok := r.internships[id]
	if !ok {
		return apperrors.ErrInternshipNotFound
	}
	in.Status = status
	return nil
}

func (r *fakeInternshipRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.internships[id]; !ok {
		return apperrors.ErrInternshipNotFound
	}
	delete(r.internships, id)
	return nil
}

type fakeApplicationRepo struct {
	nextID       int64
	applications map[int64]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1, applications: map[int64]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) (int64, error) {
	for _, a := range r.applications {
		if a.InternshipID == application.InternshipID && a.StudentID == application.StudentID {
			return 0, apperrors.ErrDuplicateApplication
		}
	}
	id := r.nextID
	r.nextID++
	stored := *application
	stored.ID = id
	stored.Status = "pending"
	stored.CreatedAt = time.Now()
	r.applications[id] = &stored
	return id, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByStudentID(ctx context.Context, studentID int64) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetApplicantsByInternshipID(ctx context.Context, internshipID int64) ([]models.Applicant, error) {
	var out []models.Applicant
	for _, a := range r.applications {
		if a.InternshipID == internshipID {
			out = append(out, models.Applicant{Application: *a})
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	a, ok := r.applications[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

type fakeStorage struct {
	saved map[string]string // url -> original filename
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string]string{}}
}

func (s *fakeStorage) Save(fileHeader *multipart.FileHeader, subdir string) (string, error) {
	url := fmt.Sprintf("/uploads/%s/generated-%d%s", subdir, len(s.saved)+1, ".pdf")
	s.saved[url] = fileHeader.Filename
	return url, nil
}

func (s *fakeStorage) Delete(fileURL string) error {
	delete(s.saved, fileURL)
	return nil
}

func (s *fakeStorage) Resolve(fileURL string) string {
	if _, ok := s.saved[fileURL]; !ok {
		return ""
	}
	return "/tmp" + fileURL
}
