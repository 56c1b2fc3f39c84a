package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusCompleted:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q is not a booking status", ErrInvalidStatus, s)
	}
}

// PackageBooking is a persisted request to book a specific pre-built package.
// TotalAmount is derived from the package price when one is set.
type PackageBooking struct {
	ID             string        `json:"id"`
	PackageID      string        `json:"package_id"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerPhone  string        `json:"customer_phone"`
	TravelDate     time.Time     `json:"travel_date"`
	NumberOfPeople int           `json:"number_of_people"`
	TotalAmount    *int64        `json:"total_amount,omitempty"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// TravelPackage is the minimal slice of the package catalog the intake
// pipeline needs: existence and a price to derive booking totals from.
// Catalog browsing itself is owned elsewhere.
type TravelPackage struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	PriceUSD int64  `json:"price_usd"`
	Active   bool   `json:"active"`
}
