package domain

import (
	"fmt"
	"time"
)

type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusReviewed  InquiryStatus = "reviewed"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusBooked    InquiryStatus = "booked"
	InquiryStatusArchived  InquiryStatus = "archived"
)

// ParseInquiryStatus rejects values outside the inquiry vocabulary; a booking
// status such as "confirmed" must fail here, never be coerced.
func ParseInquiryStatus(s string) (InquiryStatus, error) {
	switch InquiryStatus(s) {
	case InquiryStatusPending, InquiryStatusReviewed, InquiryStatusContacted,
		InquiryStatusBooked, InquiryStatusArchived:
		return InquiryStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q is not an inquiry status", ErrInvalidStatus, s)
	}
}

// CustomInquiry is a persisted free-form trip request not tied to a package.
// Interests carry the experience tags plus two synthesized tokens encoding
// travel style and accommodation, since the record has no dedicated columns
// for those. Arrival/departure dates and notes are stored separately; the
// admin-facing composed message is produced at presentation time only.
type CustomInquiry struct {
	ID               string        `json:"id"`
	CustomerName     string        `json:"customer_name"`
	CustomerEmail    string        `json:"customer_email"`
	CustomerPhone    string        `json:"customer_phone"`
	Destinations     []string      `json:"destinations"`
	Interests        []string      `json:"interests"`
	BudgetRange      string        `json:"budget_range"`
	ArrivalDate      time.Time     `json:"arrival_date"`
	DepartureDate    time.Time     `json:"departure_date"`
	NumberOfAdults   int           `json:"number_of_adults"`
	NumberOfChildren int           `json:"number_of_children"`
	NumberOfInfants  int           `json:"number_of_infants"`
	Notes            string        `json:"notes"`
	Status           InquiryStatus `json:"status"`
	AdminNotes       string        `json:"admin_notes"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
