package models

import (
	"fmt"
	"strings"

	e "github.com/nkove/interviewd/internal/interview/errors"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

// Name is a validated display name. It is trimmed and never empty.
type Name string

// NewName validates and constructs a Name.
func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name cannot be empty", e.ErrInvalidInput)
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("%w: name is too long", e.ErrInvalidInput)
	}
	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}

// Description is a validated free-text description. Trimmed, never empty.
type Description string

// NewDescription validates and constructs a Description.
func NewDescription(value string) (Description, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: description cannot be empty", e.ErrInvalidInput)
	}
	if len(trimmed) > maxDescriptionLength {
		return "", fmt.Errorf("%w: description is too long", e.ErrInvalidInput)
	}
	return Description(trimmed), nil
}

func (d Description) String() string {
	return string(d)
}
