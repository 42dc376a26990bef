package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	e "github.com/nkove/interviewd/internal/interview/errors"
)

func newTestCharacter(role CharacterRole, companyType CompanyType) *Character {
	return NewCharacter(
		"Alex Rodriguez",
		role,
		GenderMale,
		companyType,
		"A hands-on tech lead.",
		Personality{
			Traits:             []string{"direct", "curious"},
			CommunicationStyle: "casual and direct",
			ExpertiseAreas:     []string{"backend", "distributed systems"},
			InterviewApproach:  "practical problems first",
		},
		Appearance{AvatarURL: "https://example.com/alex.png"},
	)
}

func TestNewCharacter(t *testing.T) {
	c := newTestCharacter(RoleTechLead, CompanyTypeStartup)

	if c.ID == uuid.Nil {
		t.Error("expected character ID to be generated")
	}
	if !c.Active {
		t.Error("expected a new character to be active")
	}
	if c.UpdatedAt.Before(c.CreatedAt) {
		t.Error("expected updated_at >= created_at")
	}
}

func TestCharacter_IsCompatibleWith(t *testing.T) {
	tests := []struct {
		name      string
		affinity  CompanyType
		company   CompanyType
		wantMatch bool
	}{
		{"startup fits startup", CompanyTypeStartup, CompanyTypeStartup, true},
		{"startup fits faang", CompanyTypeStartup, CompanyTypeFAANG, true},
		{"startup fits enterprise", CompanyTypeStartup, CompanyTypeEnterprise, true},
		{"faang fits faang", CompanyTypeFAANG, CompanyTypeFAANG, true},
		{"faang does not fit startup", CompanyTypeFAANG, CompanyTypeStartup, false},
		{"faang does not fit enterprise", CompanyTypeFAANG, CompanyTypeEnterprise, false},
		{"enterprise fits enterprise", CompanyTypeEnterprise, CompanyTypeEnterprise, true},
		{"enterprise does not fit faang", CompanyTypeEnterprise, CompanyTypeFAANG, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter(RoleTechLead, tt.affinity)
			if got := c.IsCompatibleWith(tt.company); got != tt.wantMatch {
				t.Errorf("IsCompatibleWith(%s) = %v, want %v", tt.company, got, tt.wantMatch)
			}
		})
	}
}

func TestCharacter_Greeting(t *testing.T) {
	roles := []CharacterRole{RoleHR, RoleTechLead, RoleCTO, RoleProductManager, RoleSeniorEngineer}
	seen := make(map[string]CharacterRole, len(roles))
	for _, role := range roles {
		c := newTestCharacter(role, CompanyTypeStartup)
		g := c.Greeting()
		if g == "" {
			t.Errorf("role %s: expected a greeting", role)
		}
		if prev, dup := seen[g]; dup {
			t.Errorf("roles %s and %s share a greeting", prev, role)
		}
		seen[g] = role
	}

	// Unknown roles get the neutral fallback instead of panicking.
	c := newTestCharacter(CharacterRole("janitor"), CompanyTypeStartup)
	if g := c.Greeting(); g == "" {
		t.Error("expected a fallback greeting for unknown role")
	}
}

func TestCharacter_ActivateDeactivate(t *testing.T) {
	c := newTestCharacter(RoleHR, CompanyTypeFAANG)

	c.Deactivate()
	if c.Active {
		t.Error("expected character to be inactive")
	}
	c.Deactivate()
	if c.Active {
		t.Error("deactivate should be idempotent")
	}

	c.Activate()
	if !c.Active {
		t.Error("expected character to be active again")
	}
}

func TestCharacter_Updates(t *testing.T) {
	c := newTestCharacter(RoleHR, CompanyTypeFAANG)
	previous := c.UpdatedAt
	time.Sleep(time.Millisecond)

	c.UpdateName("Jamie Chen")
	if c.Name != "Jamie Chen" {
		t.Errorf("expected name to change, got %q", c.Name)
	}
	if !c.UpdatedAt.After(previous) {
		t.Error("expected updated_at to advance")
	}

	c.UpdatePersonality(Personality{CommunicationStyle: "formal"})
	if c.Personality.CommunicationStyle != "formal" {
		t.Error("expected personality to be replaced")
	}

	c.UpdateAppearance(Appearance{AvatarURL: "https://example.com/new.png"})
	if c.Appearance.AvatarURL != "https://example.com/new.png" {
		t.Error("expected appearance to be replaced")
	}
}

func TestCharacterRole_IsValid(t *testing.T) {
	for _, role := range []CharacterRole{RoleHR, RoleTechLead, RoleCTO, RoleProductManager, RoleSeniorEngineer} {
		if !role.IsValid() {
			t.Errorf("expected %q to be valid", role)
		}
	}
	if CharacterRole("janitor").IsValid() {
		t.Error("expected unknown role to be invalid")
	}
	if CharacterRole("").IsValid() {
		t.Error("expected empty role to be invalid")
	}
}

func TestNewName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Name
		expectErr bool
	}{
		{"valid", "Sofia Martinez", "Sofia Martinez", false},
		{"trimmed", "  Sofia Martinez  ", "Sofia Martinez", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"at limit", strings.Repeat("a", 100), Name(strings.Repeat("a", 100)), false},
		{"over limit", strings.Repeat("a", 101), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.input)
			if tt.expectErr {
				if !errors.Is(err, e.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewDescription(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"valid", "An experienced interviewer.", false},
		{"empty", "", true},
		{"whitespace only", "\t\n ", true},
		{"at limit", strings.Repeat("d", 1000), false},
		{"over limit", strings.Repeat("d", 1001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDescription(tt.input)
			if tt.expectErr {
				if !errors.Is(err, e.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
