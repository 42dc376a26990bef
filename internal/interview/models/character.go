// Package models defines the core domain models for the interview module:
// the Character and Company entities, the Interview aggregate with its
// status state machine, and the validated value types they are built from.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender represents a character's gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks whether the value is a known Gender.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

func (g Gender) String() string {
	return string(g)
}

// CharacterRole represents the interviewer role a character plays.
type CharacterRole string

const (
	RoleHR             CharacterRole = "hr"
	RoleTechLead       CharacterRole = "tech_lead"
	RoleCTO            CharacterRole = "cto"
	RoleProductManager CharacterRole = "product_manager"
	RoleSeniorEngineer CharacterRole = "senior_engineer"
)

// IsValid checks whether the value is a known CharacterRole.
func (r CharacterRole) IsValid() bool {
	switch r {
	case RoleHR, RoleTechLead, RoleCTO, RoleProductManager, RoleSeniorEngineer:
		return true
	default:
		return false
	}
}

func (r CharacterRole) String() string {
	return string(r)
}

// Personality describes how a character conducts an interview.
type Personality struct {
	// Traits lists short personality descriptors.
	Traits []string `json:"traits"`
	// CommunicationStyle summarizes tone and delivery.
	CommunicationStyle string `json:"communication_style"`
	// ExpertiseAreas lists the character's areas of expertise.
	ExpertiseAreas []string `json:"expertise_areas"`
	// InterviewApproach summarizes how the character runs interviews.
	InterviewApproach string `json:"interview_approach"`
}

// Appearance bundles the media assets rendered for a character.
type Appearance struct {
	AvatarURL        string `json:"avatar_url"`
	IdleVideoURL     string `json:"idle_video_url"`
	GreetingVideoURL string `json:"greeting_video_url"`
	ThinkingVideoURL string `json:"thinking_video_url,omitempty"`
	SpeakingVideoURL string `json:"speaking_video_url,omitempty"`
}

// Character is the persona used as the simulated interviewer.
type Character struct {
	// ID is the unique identifier for the character.
	ID uuid.UUID
	// Name is the character's display name.
	Name Name
	// Role is the interviewer role the character plays.
	Role CharacterRole
	// Gender is the character's gender.
	Gender Gender
	// CompanyType is the company affinity of the character. Startup
	// characters are compatible with every company type.
	CompanyType CompanyType
	// Description provides details about the character.
	Description Description
	// Personality describes the character's interview behavior.
	Personality Personality
	// Appearance holds avatar and video references.
	Appearance Appearance
	// Active reports whether the character can be assigned to interviews.
	Active bool
	// CreatedAt records when the character was created.
	CreatedAt time.Time
	// UpdatedAt records the last mutation time.
	UpdatedAt time.Time
}

// NewCharacter constructs an active Character with a generated ID.
func NewCharacter(
	name Name,
	role CharacterRole,
	gender Gender,
	companyType CompanyType,
	description Description,
	personality Personality,
	appearance Appearance,
) *Character {
	now := time.Now()
	return &Character{
		ID:          uuid.New(),
		Name:        name,
		Role:        role,
		Gender:      gender,
		CompanyType: companyType,
		Description: description,
		Personality: personality,
		Appearance:  appearance,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateName replaces the character's name.
func (c *Character) UpdateName(name Name) {
	c.Name = name
	c.UpdatedAt = time.Now()
}

// UpdateDescription replaces the character's description.
func (c *Character) UpdateDescription(description Description) {
	c.Description = description
	c.UpdatedAt = time.Now()
}

// UpdatePersonality replaces the character's personality profile.
func (c *Character) UpdatePersonality(personality Personality) {
	c.Personality = personality
	c.UpdatedAt = time.Now()
}

// UpdateAppearance replaces the character's media bundle.
func (c *Character) UpdateAppearance(appearance Appearance) {
	c.Appearance = appearance
	c.UpdatedAt = time.Now()
}

// Activate marks the character as assignable. Idempotent.
func (c *Character) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
}

// Deactivate retires the character from new assignments. Idempotent.
func (c *Character) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// IsCompatibleWith reports whether the character may interview for a
// company of the given type. Startup characters fit everywhere;
// everyone else only matches their own affinity.
func (c *Character) IsCompatibleWith(companyType CompanyType) bool {
	return c.CompanyType == companyType || c.CompanyType == CompanyTypeStartup
}

// greetings maps each interviewer role to its opening line.
var greetings = map[CharacterRole]string{
	RoleHR:             "Hi! I'm excited to learn more about you and discuss how you might fit into our team culture.",
	RoleTechLead:       "Hello! Let's dive into your technical experience and problem-solving approach.",
	RoleCTO:            "Welcome! I'm looking forward to discussing your technical vision and leadership experience.",
	RoleProductManager: "Hi there! Let's talk about your product thinking and user-focused approach.",
	RoleSeniorEngineer: "Hey! Ready to explore some technical challenges and discuss your engineering experience?",
}

// Greeting returns the opening line the character uses when an interview
// starts. Unknown roles fall back to a neutral line rather than panicking.
func (c *Character) Greeting() string {
	if g, ok := greetings[c.Role]; ok {
		return g
	}
	return "Hello! Thanks for joining, let's get started."
}
