package domain

import (
	"fmt"
	"time"
)

type OptionCategory string

const (
	CategoryRegion        OptionCategory = "region"
	CategoryTravelStyle   OptionCategory = "travel_style"
	CategoryAccommodation OptionCategory = "accommodation"
	CategoryExperience    OptionCategory = "experience"
)

func ParseOptionCategory(s string) (OptionCategory, error) {
	switch OptionCategory(s) {
	case CategoryRegion, CategoryTravelStyle, CategoryAccommodation, CategoryExperience:
		return OptionCategory(s), nil
	default:
		return "", fmt.Errorf("%w: unknown option category: %s", ErrValidation, s)
	}
}

// Option is an admin-curated selectable choice offered by the intake wizard.
// Only active options are shown to customers, ordered by SortOrder.
type Option struct {
	ID          string            `json:"id"`
	Category    OptionCategory    `json:"category"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Active      bool              `json:"active"`
	SortOrder   int               `json:"sort_order"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateOptionInput struct {
	Category    OptionCategory
	Label       string
	Description string
	Metadata    map[string]string
	SortOrder   int
}

type UpdateOptionInput struct {
	Label       *string
	Description *string
	Metadata    map[string]string
	Active      *bool
	SortOrder   *int
}
