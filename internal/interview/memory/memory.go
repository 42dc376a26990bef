// Package memory provides the reference in-memory implementation of the
// repository contracts. Entities are held in an ordered slice and
// scanned linearly; reads and writes exchange deep copies so callers
// always observe snapshots.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	e "github.com/nkove/interviewd/internal/interview/errors"
	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
)

// CharacterRepository is a slice-backed character store.
type CharacterRepository struct {
	mu         sync.Mutex
	characters []*models.Character
}

// NewCharacterRepository constructs an empty character store.
func NewCharacterRepository() *CharacterRepository {
	return &CharacterRepository{}
}

// Seed replaces the store contents with the given characters.
func (r *CharacterRepository) Seed(characters []*models.Character) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.characters = r.characters[:0]
	for _, c := range characters {
		r.characters = append(r.characters, copyCharacter(c))
	}
}

func (r *CharacterRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.characters {
		if c.ID == id {
			return copyCharacter(c), nil
		}
	}
	return nil, fmt.Errorf("%w: character %s", e.ErrNotFound, id)
}

func (r *CharacterRepository) FindAll(_ context.Context, filters repository.CharacterFilters) ([]*models.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Character, 0, len(r.characters))
	for _, c := range r.characters {
		if filters.Role != nil && c.Role != *filters.Role {
			continue
		}
		if filters.Gender != nil && c.Gender != *filters.Gender {
			continue
		}
		if filters.CompanyType != nil && c.CompanyType != *filters.CompanyType {
			continue
		}
		if filters.Active != nil && c.Active != *filters.Active {
			continue
		}
		out = append(out, copyCharacter(c))
	}
	return out, nil
}

func (r *CharacterRepository) FindByRole(ctx context.Context, role models.CharacterRole) ([]*models.Character, error) {
	return r.FindAll(ctx, repository.CharacterFilters{Role: &role})
}

func (r *CharacterRepository) FindByCompanyType(ctx context.Context, companyType models.CompanyType) ([]*models.Character, error) {
	return r.FindAll(ctx, repository.CharacterFilters{CompanyType: &companyType})
}

func (r *CharacterRepository) FindActive(ctx context.Context) ([]*models.Character, error) {
	active := true
	return r.FindAll(ctx, repository.CharacterFilters{Active: &active})
}

func (r *CharacterRepository) Save(_ context.Context, character *models.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.characters {
		if c.ID == character.ID {
			return fmt.Errorf("%w: character %s", e.ErrDuplicateID, character.ID)
		}
	}
	r.characters = append(r.characters, copyCharacter(character))
	return nil
}

func (r *CharacterRepository) Update(_ context.Context, character *models.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, c := range r.characters {
		if c.ID == character.ID {
			r.characters[idx] = copyCharacter(character)
			return nil
		}
	}
	return fmt.Errorf("%w: character %s", e.ErrNotFound, character.ID)
}

func (r *CharacterRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, c := range r.characters {
		if c.ID == id {
			r.characters = append(r.characters[:idx], r.characters[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *CharacterRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.characters {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// CompanyRepository is a slice-backed company store.
type CompanyRepository struct {
	mu        sync.Mutex
	companies []*models.Company
}

// NewCompanyRepository constructs an empty company store.
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

// Seed replaces the store contents with the given companies.
func (r *CompanyRepository) Seed(companies []*models.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies = r.companies[:0]
	for _, c := range companies {
		r.companies = append(r.companies, copyCompany(c))
	}
}

func (r *CompanyRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.ID == id {
			return copyCompany(c), nil
		}
	}
	return nil, fmt.Errorf("%w: company %s", e.ErrNotFound, id)
}

func (r *CompanyRepository) FindAll(_ context.Context, filters repository.CompanyFilters) ([]*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Company, 0, len(r.companies))
	for _, c := range r.companies {
		if filters.Type != nil && c.Type != *filters.Type {
			continue
		}
		if filters.Active != nil && c.Active != *filters.Active {
			continue
		}
		out = append(out, copyCompany(c))
	}
	return out, nil
}

func (r *CompanyRepository) FindByType(ctx context.Context, companyType models.CompanyType) ([]*models.Company, error) {
	return r.FindAll(ctx, repository.CompanyFilters{Type: &companyType})
}

func (r *CompanyRepository) FindActive(ctx context.Context) ([]*models.Company, error) {
	active := true
	return r.FindAll(ctx, repository.CompanyFilters{Active: &active})
}

func (r *CompanyRepository) Save(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.ID == company.ID {
			return fmt.Errorf("%w: company %s", e.ErrDuplicateID, company.ID)
		}
	}
	r.companies = append(r.companies, copyCompany(company))
	return nil
}

func (r *CompanyRepository) Update(_ context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, c := range r.companies {
		if c.ID == company.ID {
			r.companies[idx] = copyCompany(company)
			return nil
		}
	}
	return fmt.Errorf("%w: company %s", e.ErrNotFound, company.ID)
}

func (r *CompanyRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, c := range r.companies {
		if c.ID == id {
			r.companies = append(r.companies[:idx], r.companies[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *CompanyRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// InterviewRepository is a slice-backed interview store.
type InterviewRepository struct {
	mu         sync.Mutex
	interviews []*models.Interview
}

// NewInterviewRepository constructs an empty interview store.
func NewInterviewRepository() *InterviewRepository {
	return &InterviewRepository{}
}

func (r *InterviewRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.interviews {
		if i.ID == id {
			return copyInterview(i), nil
		}
	}
	return nil, fmt.Errorf("%w: interview %s", e.ErrNotFound, id)
}

func (r *InterviewRepository) FindAll(_ context.Context, filters repository.InterviewFilters) ([]*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Interview, 0, len(r.interviews))
	for _, i := range r.interviews {
		if !matchInterview(i, filters) {
			continue
		}
		out = append(out, copyInterview(i))
	}
	return out, nil
}

func (r *InterviewRepository) FindByCharacterID(ctx context.Context, characterID uuid.UUID) ([]*models.Interview, error) {
	return r.FindAll(ctx, repository.InterviewFilters{CharacterID: &characterID})
}

func (r *InterviewRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*models.Interview, error) {
	return r.FindAll(ctx, repository.InterviewFilters{CompanyID: &companyID})
}

func (r *InterviewRepository) FindByStatus(ctx context.Context, status models.InterviewStatus) ([]*models.Interview, error) {
	return r.FindAll(ctx, repository.InterviewFilters{Status: &status})
}

func (r *InterviewRepository) FindActive(ctx context.Context) ([]*models.Interview, error) {
	return r.FindByStatus(ctx, models.StatusInProgress)
}

func (r *InterviewRepository) FindCompleted(ctx context.Context) ([]*models.Interview, error) {
	return r.FindByStatus(ctx, models.StatusCompleted)
}

func (r *InterviewRepository) Save(_ context.Context, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.interviews {
		if i.ID == interview.ID {
			return fmt.Errorf("%w: interview %s", e.ErrDuplicateID, interview.ID)
		}
	}
	r.interviews = append(r.interviews, copyInterview(interview))
	return nil
}

func (r *InterviewRepository) Update(_ context.Context, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, i := range r.interviews {
		if i.ID == interview.ID {
			r.interviews[idx] = copyInterview(interview)
			return nil
		}
	}
	return fmt.Errorf("%w: interview %s", e.ErrNotFound, interview.ID)
}

func (r *InterviewRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, i := range r.interviews {
		if i.ID == id {
			r.interviews = append(r.interviews[:idx], r.interviews[idx+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *InterviewRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.interviews {
		if i.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func matchInterview(i *models.Interview, f repository.InterviewFilters) bool {
	if f.CharacterID != nil && i.CharacterID != *f.CharacterID {
		return false
	}
	if f.CompanyID != nil && i.CompanyID != *f.CompanyID {
		return false
	}
	if f.Type != nil && i.Type != *f.Type {
		return false
	}
	if f.Status != nil && i.Status != *f.Status {
		return false
	}
	if f.StartedAfter != nil && (i.StartedAt == nil || i.StartedAt.Before(*f.StartedAfter)) {
		return false
	}
	if f.StartedBefore != nil && (i.StartedAt == nil || i.StartedAt.After(*f.StartedBefore)) {
		return false
	}
	return true
}

func copyCharacter(c *models.Character) *models.Character {
	cp := *c
	cp.Personality.Traits = append([]string(nil), c.Personality.Traits...)
	cp.Personality.ExpertiseAreas = append([]string(nil), c.Personality.ExpertiseAreas...)
	return &cp
}

func copyCompany(c *models.Company) *models.Company {
	cp := *c
	cp.Profile.Culture = append([]string(nil), c.Profile.Culture...)
	cp.Profile.Values = append([]string(nil), c.Profile.Values...)
	cp.Profile.TechStack = append([]string(nil), c.Profile.TechStack...)
	cp.Profile.Benefits = append([]string(nil), c.Profile.Benefits...)
	return &cp
}

func copyInterview(i *models.Interview) *models.Interview {
	cp := *i
	cp.Messages = make([]models.Message, len(i.Messages))
	for idx, m := range i.Messages {
		mc := m
		if m.Metadata != nil {
			mc.Metadata = make(map[string]any, len(m.Metadata))
			for k, v := range m.Metadata {
				mc.Metadata[k] = v
			}
		}
		cp.Messages[idx] = mc
	}
	cp.DurationMinutes = copyIntPtr(i.DurationMinutes)
	cp.Score = copyIntPtr(i.Score)
	cp.StartedAt = copyTimePtr(i.StartedAt)
	cp.EndedAt = copyTimePtr(i.EndedAt)
	return &cp
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTimePtr(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
