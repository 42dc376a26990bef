package db

import (
	"encoding/json"
	"fmt"

	dbmodels "github.com/nkove/interviewd/internal/interview/db/models"
	"github.com/nkove/interviewd/internal/interview/models"
)

func characterToRecord(c *models.Character) (*dbmodels.Character, error) {
	personality, err := json.Marshal(c.Personality)
	if err != nil {
		return nil, fmt.Errorf("failed to encode personality: %w", err)
	}
	appearance, err := json.Marshal(c.Appearance)
	if err != nil {
		return nil, fmt.Errorf("failed to encode appearance: %w", err)
	}
	return &dbmodels.Character{
		ID:          c.ID,
		Name:        c.Name.String(),
		Role:        c.Role.String(),
		Gender:      c.Gender.String(),
		CompanyType: c.CompanyType.String(),
		Description: c.Description.String(),
		Personality: personality,
		Appearance:  appearance,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}

func characterFromRecord(rec *dbmodels.Character) (*models.Character, error) {
	var personality models.Personality
	if len(rec.Personality) > 0 {
		if err := json.Unmarshal(rec.Personality, &personality); err != nil {
			return nil, fmt.Errorf("failed to decode personality: %w", err)
		}
	}
	var appearance models.Appearance
	if len(rec.Appearance) > 0 {
		if err := json.Unmarshal(rec.Appearance, &appearance); err != nil {
			return nil, fmt.Errorf("failed to decode appearance: %w", err)
		}
	}
	return &models.Character{
		ID:          rec.ID,
		Name:        models.Name(rec.Name),
		Role:        models.CharacterRole(rec.Role),
		Gender:      models.Gender(rec.Gender),
		CompanyType: models.CompanyType(rec.CompanyType),
		Description: models.Description(rec.Description),
		Personality: personality,
		Appearance:  appearance,
		Active:      rec.Active,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

func companyToRecord(c *models.Company) (*dbmodels.Company, error) {
	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return &dbmodels.Company{
		ID:          c.ID,
		Name:        c.Name.String(),
		Type:        c.Type.String(),
		Description: c.Description.String(),
		Profile:     profile,
		LogoURL:     c.LogoURL,
		WebsiteURL:  c.WebsiteURL,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}

func companyFromRecord(rec *dbmodels.Company) (*models.Company, error) {
	var profile models.CompanyProfile
	if len(rec.Profile) > 0 {
		if err := json.Unmarshal(rec.Profile, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
	}
	return &models.Company{
		ID:          rec.ID,
		Name:        models.Name(rec.Name),
		Type:        models.CompanyType(rec.Type),
		Description: models.Description(rec.Description),
		Profile:     profile,
		LogoURL:     rec.LogoURL,
		WebsiteURL:  rec.WebsiteURL,
		Active:      rec.Active,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

func interviewToRecord(i *models.Interview) (*dbmodels.Interview, error) {
	messages, err := json.Marshal(i.Messages)
	if err != nil {
		return nil, fmt.Errorf("failed to encode messages: %w", err)
	}
	return &dbmodels.Interview{
		ID:              i.ID,
		CharacterID:     i.CharacterID,
		CompanyID:       i.CompanyID,
		Type:            i.Type.String(),
		Status:          i.Status.String(),
		Title:           i.Title,
		Description:     i.Description,
		Messages:        messages,
		DurationMinutes: i.DurationMinutes,
		Score:           i.Score,
		Feedback:        i.Feedback,
		StartedAt:       i.StartedAt,
		EndedAt:         i.EndedAt,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}, nil
}

func interviewFromRecord(rec *dbmodels.Interview) (*models.Interview, error) {
	messages := []models.Message{}
	if len(rec.Messages) > 0 {
		if err := json.Unmarshal(rec.Messages, &messages); err != nil {
			return nil, fmt.Errorf("failed to decode messages: %w", err)
		}
	}
	return &models.Interview{
		ID:              rec.ID,
		CharacterID:     rec.CharacterID,
		CompanyID:       rec.CompanyID,
		Type:            models.InterviewType(rec.Type),
		Status:          models.InterviewStatus(rec.Status),
		Title:           rec.Title,
		Description:     rec.Description,
		Messages:        messages,
		DurationMinutes: rec.DurationMinutes,
		Score:           rec.Score,
		Feedback:        rec.Feedback,
		StartedAt:       rec.StartedAt,
		EndedAt:         rec.EndedAt,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}, nil
}
