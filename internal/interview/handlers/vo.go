package handlers

import (
	"time"

	"github.com/nkove/interviewd/internal/interview/models"
)

// View objects are the serialization contract the UI depends on:
// identifiers flattened to bare strings, enums as their string tags,
// timestamps as RFC 3339 text.

// CharacterVO is the wire shape of a character.
type CharacterVO struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Role        string             `json:"role"`
	Gender      string             `json:"gender"`
	CompanyType string             `json:"company_type"`
	Description string             `json:"description"`
	Personality models.Personality `json:"personality"`
	Appearance  models.Appearance  `json:"appearance"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// CompanyVO is the wire shape of a company.
type CompanyVO struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Description string                `json:"description"`
	Profile     models.CompanyProfile `json:"profile"`
	LogoURL     string                `json:"logo_url,omitempty"`
	WebsiteURL  string                `json:"website_url,omitempty"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// MessageVO is the wire shape of one transcript message.
type MessageVO struct {
	ID        string         `json:"id"`
	Sender    string         `json:"sender"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// InterviewVO is the wire shape of an interview.
type InterviewVO struct {
	ID              string      `json:"id"`
	CharacterID     string      `json:"character_id"`
	CompanyID       string      `json:"company_id"`
	Type            string      `json:"type"`
	Status          string      `json:"status"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Messages        []MessageVO `json:"messages"`
	DurationMinutes *int        `json:"duration_minutes,omitempty"`
	Score           *int        `json:"score,omitempty"`
	Feedback        string      `json:"feedback,omitempty"`
	StartedAt       string      `json:"started_at,omitempty"`
	EndedAt         string      `json:"ended_at,omitempty"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

func characterToVO(c *models.Character) CharacterVO {
	return CharacterVO{
		ID:          c.ID.String(),
		Name:        c.Name.String(),
		Role:        c.Role.String(),
		Gender:      c.Gender.String(),
		CompanyType: c.CompanyType.String(),
		Description: c.Description.String(),
		Personality: c.Personality,
		Appearance:  c.Appearance,
		IsActive:    c.Active,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func charactersToVO(characters []*models.Character) []CharacterVO {
	out := make([]CharacterVO, 0, len(characters))
	for _, c := range characters {
		out = append(out, characterToVO(c))
	}
	return out
}

func companyToVO(c *models.Company) CompanyVO {
	return CompanyVO{
		ID:          c.ID.String(),
		Name:        c.Name.String(),
		Type:        c.Type.String(),
		Description: c.Description.String(),
		Profile:     c.Profile,
		LogoURL:     c.LogoURL,
		WebsiteURL:  c.WebsiteURL,
		IsActive:    c.Active,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func companiesToVO(companies []*models.Company) []CompanyVO {
	out := make([]CompanyVO, 0, len(companies))
	for _, c := range companies {
		out = append(out, companyToVO(c))
	}
	return out
}

func interviewToVO(i *models.Interview) InterviewVO {
	messages := make([]MessageVO, 0, len(i.Messages))
	for _, m := range i.Messages {
		messages = append(messages, MessageVO{
			ID:        m.ID.String(),
			Sender:    m.Sender.String(),
			Type:      m.Type.String(),
			Content:   m.Content,
			Timestamp: m.Timestamp.Format(time.RFC3339),
			Metadata:  m.Metadata,
		})
	}
	vo := InterviewVO{
		ID:              i.ID.String(),
		CharacterID:     i.CharacterID.String(),
		CompanyID:       i.CompanyID.String(),
		Type:            i.Type.String(),
		Status:          i.Status.String(),
		Title:           i.Title,
		Description:     i.Description,
		Messages:        messages,
		DurationMinutes: i.DurationMinutes,
		Score:           i.Score,
		Feedback:        i.Feedback,
		CreatedAt:       i.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       i.UpdatedAt.Format(time.RFC3339),
	}
	if i.StartedAt != nil {
		vo.StartedAt = i.StartedAt.Format(time.RFC3339)
	}
	if i.EndedAt != nil {
		vo.EndedAt = i.EndedAt.Format(time.RFC3339)
	}
	return vo
}

func interviewsToVO(interviews []*models.Interview) []InterviewVO {
	out := make([]InterviewVO, 0, len(interviews))
	for _, i := range interviews {
		out = append(out, interviewToVO(i))
	}
	return out
}
