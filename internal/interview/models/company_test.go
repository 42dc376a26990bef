package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestCompany(companyType CompanyType) *Company {
	return NewCompany(
		"Nimbus Labs",
		companyType,
		"A cloud tooling startup.",
		CompanyProfile{
			Industry: "developer tools",
			Size:     "11-50",
			Culture:  []string{"autonomy", "speed"},
			Values:   []string{"ownership"},
		},
	)
}

func TestNewCompany(t *testing.T) {
	c := newTestCompany(CompanyTypeStartup)

	if c.ID == uuid.Nil {
		t.Error("expected company ID to be generated")
	}
	if !c.Active {
		t.Error("expected a new company to be active")
	}
	if c.Profile.Industry != "developer tools" {
		t.Errorf("expected profile to be kept, got %+v", c.Profile)
	}
}

func TestCompany_InterviewContext(t *testing.T) {
	seen := make(map[string]CompanyType, 3)
	for _, companyType := range []CompanyType{CompanyTypeStartup, CompanyTypeFAANG, CompanyTypeEnterprise} {
		c := newTestCompany(companyType)
		ctx := c.InterviewContext()
		if ctx == "" {
			t.Errorf("type %s: expected an interview context", companyType)
		}
		if prev, dup := seen[ctx]; dup {
			t.Errorf("types %s and %s share an interview context", prev, companyType)
		}
		seen[ctx] = companyType
	}

	c := newTestCompany(CompanyType("nonprofit"))
	if ctx := c.InterviewContext(); ctx == "" {
		t.Error("expected a fallback context for unknown type")
	}
}

func TestCompany_Updates(t *testing.T) {
	c := newTestCompany(CompanyTypeEnterprise)
	previous := c.UpdatedAt
	time.Sleep(time.Millisecond)

	c.UpdateName("Meridian Systems")
	if c.Name != "Meridian Systems" {
		t.Errorf("expected name to change, got %q", c.Name)
	}
	if !c.UpdatedAt.After(previous) {
		t.Error("expected updated_at to advance")
	}

	c.UpdateLogoURL("https://example.com/logo.svg")
	c.UpdateWebsiteURL("https://example.com")
	if c.LogoURL == "" || c.WebsiteURL == "" {
		t.Error("expected media references to be stored")
	}

	c.Deactivate()
	if c.Active {
		t.Error("expected company to be inactive")
	}
	c.Activate()
	if !c.Active {
		t.Error("expected company to be active again")
	}
}

func TestCompanyType_IsValid(t *testing.T) {
	for _, companyType := range []CompanyType{CompanyTypeStartup, CompanyTypeFAANG, CompanyTypeEnterprise} {
		if !companyType.IsValid() {
			t.Errorf("expected %q to be valid", companyType)
		}
	}
	if CompanyType("nonprofit").IsValid() {
		t.Error("expected unknown type to be invalid")
	}
}
