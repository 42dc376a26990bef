package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyType represents the category of a hiring company. The same set
// of values doubles as a character's company affinity.
type CompanyType string

const (
	CompanyTypeStartup    CompanyType = "startup"
	CompanyTypeFAANG      CompanyType = "faang"
	CompanyTypeEnterprise CompanyType = "enterprise"
)

// IsValid checks whether the value is a known CompanyType.
func (t CompanyType) IsValid() bool {
	switch t {
	case CompanyTypeStartup, CompanyTypeFAANG, CompanyTypeEnterprise:
		return true
	default:
		return false
	}
}

func (t CompanyType) String() string {
	return string(t)
}

// CompanyProfile describes the company beyond its type.
type CompanyProfile struct {
	Industry  string   `json:"industry"`
	Size      string   `json:"size"`
	Culture   []string `json:"culture"`
	Values    []string `json:"values"`
	TechStack []string `json:"tech_stack,omitempty"`
	Benefits  []string `json:"benefits,omitempty"`
}

// Company is the hiring organization an interview is bound to.
type Company struct {
	// ID is the unique identifier for the company.
	ID uuid.UUID
	// Name is the company's name.
	Name Name
	// Type specifies the category of the company.
	Type CompanyType
	// Description provides details about the company.
	Description Description
	// Profile holds industry, size, culture and related attributes.
	Profile CompanyProfile
	// LogoURL optionally points at the company logo.
	LogoURL string
	// WebsiteURL optionally points at the company website.
	WebsiteURL string
	// Active reports whether the company can host new interviews.
	Active bool
	// CreatedAt records when the company was created.
	CreatedAt time.Time
	// UpdatedAt records the last mutation time.
	UpdatedAt time.Time
}

// NewCompany constructs an active Company with a generated ID.
func NewCompany(
	name Name,
	companyType CompanyType,
	description Description,
	profile CompanyProfile,
) *Company {
	now := time.Now()
	return &Company{
		ID:          uuid.New(),
		Name:        name,
		Type:        companyType,
		Description: description,
		Profile:     profile,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateName replaces the company's name.
func (c *Company) UpdateName(name Name) {
	c.Name = name
	c.UpdatedAt = time.Now()
}

// UpdateDescription replaces the company's description.
func (c *Company) UpdateDescription(description Description) {
	c.Description = description
	c.UpdatedAt = time.Now()
}

// UpdateProfile replaces the company profile.
func (c *Company) UpdateProfile(profile CompanyProfile) {
	c.Profile = profile
	c.UpdatedAt = time.Now()
}

// UpdateLogoURL replaces the logo reference.
func (c *Company) UpdateLogoURL(logoURL string) {
	c.LogoURL = logoURL
	c.UpdatedAt = time.Now()
}

// UpdateWebsiteURL replaces the website reference.
func (c *Company) UpdateWebsiteURL(websiteURL string) {
	c.WebsiteURL = websiteURL
	c.UpdatedAt = time.Now()
}

// Activate marks the company as open for interviews. Idempotent.
func (c *Company) Activate() {
	c.Active = true
	c.UpdatedAt = time.Now()
}

// Deactivate closes the company for new interviews. Idempotent.
func (c *Company) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// interviewContexts maps each company type to the framing line used
// when introducing the company during an interview.
var interviewContexts = map[CompanyType]string{
	CompanyTypeStartup:    "We're a fast-growing startup looking for adaptable team members who thrive in dynamic environments.",
	CompanyTypeFAANG:      "We're a major tech company seeking top-tier talent who can operate at scale and drive innovation.",
	CompanyTypeEnterprise: "We're an established enterprise focused on reliability, best practices, and long-term solutions.",
}

// InterviewContext returns the framing line for the company's type.
// Unknown types fall back to a neutral line.
func (c *Company) InterviewContext() string {
	if ctx, ok := interviewContexts[c.Type]; ok {
		return ctx
	}
	return "We're a company looking for great people to join our team."
}
