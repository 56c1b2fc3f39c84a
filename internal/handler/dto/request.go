package dto

import "github.com/wanderlk/tripdesk/internal/domain"

// WizardAdvanceRequest carries a thin client's wizard state for stateless
// per-step validation. The server holds no session; the client sends the
// whole draft each time.
type WizardAdvanceRequest struct {
	CurrentStep int                 `json:"current_step" binding:"min=0"`
	Draft       domain.DraftRequest `json:"draft"`
}

type BookingRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	CountryCode    string `json:"country_code"`
	Phone          string `json:"phone"`
	TravelDate     string `json:"travel_date" binding:"required"`
	NumberOfPeople int    `json:"number_of_people" binding:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type CreateOptionRequest struct {
	Category    string            `json:"category" binding:"required"`
	Label       string            `json:"label" binding:"required"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	SortOrder   int               `json:"sort_order"`
}

type UpdateOptionRequest struct {
	Label       *string           `json:"label"`
	Description *string           `json:"description"`
	Metadata    map[string]string `json:"metadata"`
	Active      *bool             `json:"active"`
	SortOrder   *int              `json:"sort_order"`
}
