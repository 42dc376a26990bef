package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/nkove/interviewd/internal/interview/errors"
	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
)

// CompanyUpdate represents the fields that can be updated for a
// Company. Pointer types allow partial updates.
type CompanyUpdate struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Profile     *models.CompanyProfile
	LogoURL     *string
	WebsiteURL  *string
}

// CompanyService provides read access and administrative mutation of
// hiring companies.
type CompanyService struct {
	companies repository.CompanyRepository
	logger    *zap.Logger
}

// NewCompanyService constructs a CompanyService.
func NewCompanyService(companies repository.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companies: companies,
		logger:    logger.Named("company_service"),
	}
}

// Get retrieves a company by id.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// List retrieves companies matching the filters.
func (s *CompanyService) List(ctx context.Context, filters repository.CompanyFilters) ([]*models.Company, error) {
	return s.companies.FindAll(ctx, filters)
}

// ByType retrieves companies of the given type.
func (s *CompanyService) ByType(ctx context.Context, companyType models.CompanyType) ([]*models.Company, error) {
	if !companyType.IsValid() {
		return nil, fmt.Errorf("%w: unknown company type %q", e.ErrInvalidInput, companyType)
	}
	return s.companies.FindByType(ctx, companyType)
}

// Active retrieves all companies open for interviews.
func (s *CompanyService) Active(ctx context.Context) ([]*models.Company, error) {
	return s.companies.FindActive(ctx)
}

// Update applies a partial update to a company and persists it.
func (s *CompanyService) Update(ctx context.Context, update CompanyUpdate) (*models.Company, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid company ID", e.ErrInvalidInput)
	}

	company, err := s.companies.FindByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name, err := models.NewName(*update.Name)
		if err != nil {
			return nil, err
		}
		company.UpdateName(name)
	}
	if update.Description != nil {
		description, err := models.NewDescription(*update.Description)
		if err != nil {
			return nil, err
		}
		company.UpdateDescription(description)
	}
	if update.Profile != nil {
		company.UpdateProfile(*update.Profile)
	}
	if update.LogoURL != nil {
		company.UpdateLogoURL(*update.LogoURL)
	}
	if update.WebsiteURL != nil {
		company.UpdateWebsiteURL(*update.WebsiteURL)
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// Activate reopens a company for interviews.
func (s *CompanyService) Activate(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.Activate()
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// Deactivate closes a company for new interviews.
func (s *CompanyService) Deactivate(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.Deactivate()
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}
