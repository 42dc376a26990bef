// Package repository declares the storage contracts for the interview
// module. Two adapters implement them: the reference in-memory adapter
// (package memory) and the gorm-backed adapter (package db). Filter
// fields are optional equality predicates combined with AND; an absent
// field matches everything, an unknown value matches nothing.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nkove/interviewd/internal/interview/models"
)

// CharacterFilters narrows a character listing.
type CharacterFilters struct {
	Role        *models.CharacterRole
	Gender      *models.Gender
	CompanyType *models.CompanyType
	Active      *bool
}

// CompanyFilters narrows a company listing.
type CompanyFilters struct {
	Type   *models.CompanyType
	Active *bool
}

// InterviewFilters narrows an interview listing. StartedAfter and
// StartedBefore bound the start time inclusively and only match
// interviews that have started.
type InterviewFilters struct {
	CharacterID   *uuid.UUID
	CompanyID     *uuid.UUID
	Type          *models.InterviewType
	Status        *models.InterviewStatus
	StartedAfter  *time.Time
	StartedBefore *time.Time
}

// CharacterRepository is the storage contract for Character entities.
// FindByID returns ErrNotFound for unknown ids; Save returns
// ErrDuplicateID when the id already exists; Update returns ErrNotFound
// when it does not. Delete is idempotent and reports whether anything
// was removed.
type CharacterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Character, error)
	FindAll(ctx context.Context, filters CharacterFilters) ([]*models.Character, error)
	FindByRole(ctx context.Context, role models.CharacterRole) ([]*models.Character, error)
	FindByCompanyType(ctx context.Context, companyType models.CompanyType) ([]*models.Character, error)
	FindActive(ctx context.Context) ([]*models.Character, error)
	Save(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, character *models.Character) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CompanyRepository is the storage contract for Company entities. Error
// semantics match CharacterRepository.
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	FindAll(ctx context.Context, filters CompanyFilters) ([]*models.Company, error)
	FindByType(ctx context.Context, companyType models.CompanyType) ([]*models.Company, error)
	FindActive(ctx context.Context) ([]*models.Company, error)
	Save(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// InterviewRepository is the storage contract for the Interview
// aggregate. Error semantics match CharacterRepository. Delete exists
// for administrative and test use; normal flow never removes interviews.
type InterviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	FindAll(ctx context.Context, filters InterviewFilters) ([]*models.Interview, error)
	FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*models.Interview, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*models.Interview, error)
	FindByStatus(ctx context.Context, status models.InterviewStatus) ([]*models.Interview, error)
	FindActive(ctx context.Context) ([]*models.Interview, error)
	FindCompleted(ctx context.Context) ([]*models.Interview, error)
	Save(ctx context.Context, interview *models.Interview) error
	Update(ctx context.Context, interview *models.Interview) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
