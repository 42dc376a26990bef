// Package db implements the repository contracts on top of GORM with a
// PostgreSQL backend. Tests run the same code against in-memory SQLite.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbmodels "github.com/nkove/interviewd/internal/interview/db/models"
	e "github.com/nkove/interviewd/internal/interview/errors"
	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
)

// Config holds the PostgreSQL connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Store owns the database handle and hands out the per-entity
// repositories that share it.
type Store struct {
	db *gorm.DB
}

// New connects to PostgreSQL and migrates the schema.
func New(cfg *Config) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewWithDB(gdb)
}

// NewWithDB wraps an existing GORM handle, migrating the schema. Tests
// use this with SQLite.
func NewWithDB(gdb *gorm.DB) (*Store, error) {
	if err := gdb.AutoMigrate(&dbmodels.Character{}, &dbmodels.Company{}, &dbmodels.Interview{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: gdb}, nil
}

// Characters returns the character repository backed by this store.
func (s *Store) Characters() repository.CharacterRepository {
	return &CharacterRepository{db: s.db}
}

// Companies returns the company repository backed by this store.
func (s *Store) Companies() repository.CompanyRepository {
	return &CompanyRepository{db: s.db}
}

// Interviews returns the interview repository backed by this store.
func (s *Store) Interviews() repository.InterviewRepository {
	return &InterviewRepository{db: s.db}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CharacterRepository is the GORM-backed character store.
type CharacterRepository struct {
	db *gorm.DB
}

func (r *CharacterRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Character, error) {
	var rec dbmodels.Character
	result := r.db.WithContext(ctx).First(&rec, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: character %s", e.ErrNotFound, id)
		}
		return nil, result.Error
	}
	return characterFromRecord(&rec)
}

func (r *CharacterRepository) FindAll(ctx context.Context, filters repository.CharacterFilters) ([]*models.Character, error) {
	query := r.db.WithContext(ctx).Model(&dbmodels.Character{})
	if filters.Role != nil {
		query = query.Where("role = ?", filters.Role.String())
	}
	if filters.Gender != nil {
		query = query.Where("gender = ?", filters.Gender.String())
	}
	if filters.CompanyType != nil {
		query = query.Where("company_type = ?", filters.CompanyType.String())
	}
	if filters.Active != nil {
		query = query.Where("active = ?", *filters.Active)
	}

	var recs []dbmodels.Character
	if err := query.Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Character, 0, len(recs))
	for idx := range recs {
		c, err := characterFromRecord(&recs[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
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

func (r *CharacterRepository) Save(ctx context.Context, character *models.Character) error {
	rec, err := characterToRecord(character)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: character %s", e.ErrDuplicateID, character.ID)
		}
		return result.Error
	}
	return nil
}

func (r *CharacterRepository) Update(ctx context.Context, character *models.Character) error {
	rec, err := characterToRecord(character)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&dbmodels.Character{}).
		Where("id = ?", rec.ID).
		Select("*").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: character %s", e.ErrNotFound, character.ID)
	}
	return nil
}

func (r *CharacterRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Character{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CharacterRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&dbmodels.Character{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// CompanyRepository is the GORM-backed company store.
type CompanyRepository struct {
	db *gorm.DB
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var rec dbmodels.Company
	result := r.db.WithContext(ctx).First(&rec, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company %s", e.ErrNotFound, id)
		}
		return nil, result.Error
	}
	return companyFromRecord(&rec)
}

func (r *CompanyRepository) FindAll(ctx context.Context, filters repository.CompanyFilters) ([]*models.Company, error) {
	query := r.db.WithContext(ctx).Model(&dbmodels.Company{})
	if filters.Type != nil {
		query = query.Where("type = ?", filters.Type.String())
	}
	if filters.Active != nil {
		query = query.Where("active = ?", *filters.Active)
	}

	var recs []dbmodels.Company
	if err := query.Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Company, 0, len(recs))
	for idx := range recs {
		c, err := companyFromRecord(&recs[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
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

func (r *CompanyRepository) Save(ctx context.Context, company *models.Company) error {
	rec, err := companyToRecord(company)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: company %s", e.ErrDuplicateID, company.ID)
		}
		return result.Error
	}
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	rec, err := companyToRecord(company)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&dbmodels.Company{}).
		Where("id = ?", rec.ID).
		Select("*").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: company %s", e.ErrNotFound, company.ID)
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Company{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CompanyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&dbmodels.Company{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// InterviewRepository is the GORM-backed interview store.
type InterviewRepository struct {
	db *gorm.DB
}

func (r *InterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	var rec dbmodels.Interview
	result := r.db.WithContext(ctx).First(&rec, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: interview %s", e.ErrNotFound, id)
		}
		return nil, result.Error
	}
	return interviewFromRecord(&rec)
}

func (r *InterviewRepository) FindAll(ctx context.Context, filters repository.InterviewFilters) ([]*models.Interview, error) {
	query := r.db.WithContext(ctx).Model(&dbmodels.Interview{})
	if filters.CharacterID != nil {
		query = query.Where("character_id = ?", *filters.CharacterID)
	}
	if filters.CompanyID != nil {
		query = query.Where("company_id = ?", *filters.CompanyID)
	}
	if filters.Type != nil {
		query = query.Where("type = ?", filters.Type.String())
	}
	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.StartedAfter != nil {
		query = query.Where("started_at IS NOT NULL AND started_at >= ?", *filters.StartedAfter)
	}
	if filters.StartedBefore != nil {
		query = query.Where("started_at IS NOT NULL AND started_at <= ?", *filters.StartedBefore)
	}

	var recs []dbmodels.Interview
	if err := query.Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Interview, 0, len(recs))
	for idx := range recs {
		i, err := interviewFromRecord(&recs[idx])
		if err != nil {
			return nil, err
		}
		out = append(out, i)
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

func (r *InterviewRepository) Save(ctx context.Context, interview *models.Interview) error {
	rec, err := interviewToRecord(interview)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(rec)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: interview %s", e.ErrDuplicateID, interview.ID)
		}
		return result.Error
	}
	return nil
}

func (r *InterviewRepository) Update(ctx context.Context, interview *models.Interview) error {
	rec, err := interviewToRecord(interview)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&dbmodels.Interview{}).
		Where("id = ?", rec.ID).
		Select("*").
		Updates(rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: interview %s", e.ErrNotFound, interview.ID)
	}
	return nil
}

func (r *InterviewRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Interview{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *InterviewRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
