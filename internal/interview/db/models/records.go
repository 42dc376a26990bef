// Package models contains the persistence records for the interview
// module, configured for GORM. Nested structures (personality, profile,
// transcript) are stored as JSON columns; the db package converts
// between these records and the domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Character is the database record for a character entity. Timestamps
// are owned by the domain layer, so GORM's automatic tracking is off.
type Character struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100"`
	Role        string    `gorm:"size:32;index"`
	Gender      string    `gorm:"size:16;index"`
	CompanyType string    `gorm:"size:32;index"`
	Description string    `gorm:"size:1000"`
	Personality datatypes.JSON
	Appearance  datatypes.JSON
	Active      bool      `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// Company is the database record for a company entity.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100"`
	Type        string    `gorm:"size:32;index"`
	Description string    `gorm:"size:1000"`
	Profile     datatypes.JSON
	LogoURL     string
	WebsiteURL  string
	Active      bool      `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// Interview is the database record for the interview aggregate. The
// transcript travels with the row as a JSON document; the aggregate is
// always loaded and stored whole.
type Interview struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CharacterID     uuid.UUID `gorm:"type:uuid;index"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index"`
	Type            string    `gorm:"size:32;index"`
	Status          string    `gorm:"size:32;index"`
	Title           string    `gorm:"size:200"`
	Description     string    `gorm:"size:1000"`
	Messages        datatypes.JSON
	DurationMinutes *int
	Score           *int
	Feedback        string
	StartedAt       *time.Time `gorm:"index"`
	EndedAt         *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}
