package domain

import "time"

type ActivityType string

const (
	ActivityInquiry ActivityType = "inquiry"
	ActivityBooking ActivityType = "booking"
)

// ActivityItem is a read-only projection of either request kind for the
// unified recency feed. It is never written back.
type ActivityItem struct {
	Type         ActivityType `json:"type"`
	ID           string       `json:"id"`
	CustomerName string       `json:"customer_name"`
	Summary      string       `json:"summary"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// PendingCounts is the dashboard badge summary: per-kind pending requests
// plus their sum.
type PendingCounts struct {
	Inquiries int `json:"inquiries"`
	Bookings  int `json:"bookings"`
	Total     int `json:"total"`
}
