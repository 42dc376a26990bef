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

// CharacterUpdate represents the fields that can be updated for a
// Character. Pointer types allow partial updates.
type CharacterUpdate struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Personality *models.Personality
	Appearance  *models.Appearance
}

// CharacterService provides read access and administrative mutation of
// interviewer characters.
type CharacterService struct {
	characters repository.CharacterRepository
	logger     *zap.Logger
}

// NewCharacterService constructs a CharacterService.
func NewCharacterService(characters repository.CharacterRepository, logger *zap.Logger) *CharacterService {
	return &CharacterService{
		characters: characters,
		logger:     logger.Named("character_service"),
	}
}

// Get retrieves a character by id.
func (s *CharacterService) Get(ctx context.Context, id uuid.UUID) (*models.Character, error) {
	return s.characters.FindByID(ctx, id)
}

// List retrieves characters matching the filters.
func (s *CharacterService) List(ctx context.Context, filters repository.CharacterFilters) ([]*models.Character, error) {
	return s.characters.FindAll(ctx, filters)
}

// ByRole retrieves characters playing the given role.
func (s *CharacterService) ByRole(ctx context.Context, role models.CharacterRole) ([]*models.Character, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown character role %q", e.ErrInvalidInput, role)
	}
	return s.characters.FindByRole(ctx, role)
}

// ByCompanyType retrieves characters with the given company affinity.
func (s *CharacterService) ByCompanyType(ctx context.Context, companyType models.CompanyType) ([]*models.Character, error) {
	if !companyType.IsValid() {
		return nil, fmt.Errorf("%w: unknown company type %q", e.ErrInvalidInput, companyType)
	}
	return s.characters.FindByCompanyType(ctx, companyType)
}

// Active retrieves all characters available for assignment.
func (s *CharacterService) Active(ctx context.Context) ([]*models.Character, error) {
	return s.characters.FindActive(ctx)
}

// Update applies a partial update to a character and persists it.
func (s *CharacterService) Update(ctx context.Context, update CharacterUpdate) (*models.Character, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid character ID", e.ErrInvalidInput)
	}

	character, err := s.characters.FindByID(ctx, update.ID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name, err := models.NewName(*update.Name)
		if err != nil {
			return nil, err
		}
		character.UpdateName(name)
	}
	if update.Description != nil {
		description, err := models.NewDescription(*update.Description)
		if err != nil {
			return nil, err
		}
		character.UpdateDescription(description)
	}
	if update.Personality != nil {
		character.UpdatePersonality(*update.Personality)
	}
	if update.Appearance != nil {
		character.UpdateAppearance(*update.Appearance)
	}

	if err := s.characters.Update(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return character, nil
}

// Activate makes a character assignable again.
func (s *CharacterService) Activate(ctx context.Context, id uuid.UUID) (*models.Character, error) {
	character, err := s.characters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	character.Activate()
	if err := s.characters.Update(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return character, nil
}

// Deactivate retires a character from new assignments. Existing
// interviews keep their reference.
func (s *CharacterService) Deactivate(ctx context.Context, id uuid.UUID) (*models.Character, error) {
	character, err := s.characters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	character.Deactivate()
	if err := s.characters.Update(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return character, nil
}
