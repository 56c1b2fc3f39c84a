package dto

import (
	"time"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/validate"
)

type WizardAdvanceResponse struct {
	NextStep  int               `json:"next_step"`
	StepName  string            `json:"step_name"`
	Completed bool              `json:"completed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type InquiryResponse struct {
	ID               string   `json:"id"`
	CustomerName     string   `json:"customer_name"`
	CustomerEmail    string   `json:"customer_email"`
	CustomerPhone    string   `json:"customer_phone,omitempty"`
	Destinations     []string `json:"destinations"`
	Interests        []string `json:"interests"`
	BudgetRange      string   `json:"budget_range"`
	ArrivalDate      string   `json:"arrival_date"`
	DepartureDate    string   `json:"departure_date"`
	NumberOfAdults   int      `json:"number_of_adults"`
	NumberOfChildren int      `json:"number_of_children"`
	NumberOfInfants  int      `json:"number_of_infants"`
	Message          string   `json:"message"`
	Status           string   `json:"status"`
	AdminNotes       string   `json:"admin_notes,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	PackageID      string `json:"package_id"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone,omitempty"`
	TravelDate     string `json:"travel_date"`
	NumberOfPeople int    `json:"number_of_people"`
	TotalAmount    *int64 `json:"total_amount,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type OptionResponse struct {
	ID          string            `json:"id"`
	Category    string            `json:"category"`
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Active      bool              `json:"active"`
	SortOrder   int               `json:"sort_order"`
}

type ActivityResponse struct {
	Type         string `json:"type"`
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Summary      string `json:"summary"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type PendingCountsResponse struct {
	Inquiries int `json:"inquiries"`
	Bookings  int `json:"bookings"`
	Total     int `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse surfaces every failing field at once, plus a general
// message for the form header.
type FieldErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

func ToInquiryResponse(inq *domain.CustomInquiry) InquiryResponse {
	return InquiryResponse{
		ID:               inq.ID,
		CustomerName:     inq.CustomerName,
		CustomerEmail:    inq.CustomerEmail,
		CustomerPhone:    inq.CustomerPhone,
		Destinations:     inq.Destinations,
		Interests:        inq.Interests,
		BudgetRange:      inq.BudgetRange,
		ArrivalDate:      inq.ArrivalDate.Format(validate.DateLayout),
		DepartureDate:    inq.DepartureDate.Format(validate.DateLayout),
		NumberOfAdults:   inq.NumberOfAdults,
		NumberOfChildren: inq.NumberOfChildren,
		NumberOfInfants:  inq.NumberOfInfants,
		Message:          validate.ComposeMessage(inq.ArrivalDate, inq.DepartureDate, inq.Notes),
		Status:           string(inq.Status),
		AdminNotes:       inq.AdminNotes,
		CreatedAt:        inq.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        inq.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.PackageBooking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		PackageID:      b.PackageID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		TravelDate:     b.TravelDate.Format(validate.DateLayout),
		NumberOfPeople: b.NumberOfPeople,
		TotalAmount:    b.TotalAmount,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToOptionResponse(o *domain.Option) OptionResponse {
	return OptionResponse{
		ID:          o.ID,
		Category:    string(o.Category),
		Label:       o.Label,
		Description: o.Description,
		Metadata:    o.Metadata,
		Active:      o.Active,
		SortOrder:   o.SortOrder,
	}
}

func ToActivityResponse(item domain.ActivityItem) ActivityResponse {
	return ActivityResponse{
		Type:         string(item.Type),
		ID:           item.ID,
		CustomerName: item.CustomerName,
		Summary:      item.Summary,
		Status:       item.Status,
		CreatedAt:    item.CreatedAt.Format(time.RFC3339),
	}
}
