package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	StudentRepository     *StudentRepository
	CompanyRepository     *CompanyRepository
	InternshipRepository  *InternshipRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		StudentRepository:     NewStudentRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
		InternshipRepository:  NewInternshipRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
