package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/service/ports"
)

const defaultActivityLimit = 10

// ActivityService merges both request streams into one recency-ordered feed
// and computes the pending-count badges.
type ActivityService struct {
	inquiryRepo ports.InquiryRepo
	bookingRepo ports.BookingRepo
}

func NewActivityService(inquiryRepo ports.InquiryRepo, bookingRepo ports.BookingRepo) *ActivityService {
	return &ActivityService{
		inquiryRepo: inquiryRepo,
		bookingRepo: bookingRepo,
	}
}

// RecentActivity fetches up to limit of each kind, tags them, re-sorts the
// combined feed by created_at descending and truncates. The per-kind limit
// can in principle push out an item that would rank within the global top,
// which is an accepted trade against a cross-entity query at these volumes.
func (s *ActivityService) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	inquiries, err := s.inquiryRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent inquiries: %w", err)
	}

	bookings, err := s.bookingRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}

	items := make([]domain.ActivityItem, 0, len(inquiries)+len(bookings))
	for _, inq := range inquiries {
		items = append(items, domain.ActivityItem{
			Type:         domain.ActivityInquiry,
			ID:           inq.ID,
			CustomerName: inq.CustomerName,
			Summary:      strings.Join(inq.Destinations, ", "),
			Status:       string(inq.Status),
			CreatedAt:    inq.CreatedAt,
		})
	}
	for _, b := range bookings {
		items = append(items, domain.ActivityItem{
			Type:         domain.ActivityBooking,
			ID:           b.ID,
			CustomerName: b.CustomerName,
			Summary:      fmt.Sprintf("package %s, %d pax", b.PackageID, b.NumberOfPeople),
			Status:       string(b.Status),
			CreatedAt:    b.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// PendingCounts exposes the per-kind pending totals and their sum for the
// single badge number.
func (s *ActivityService) PendingCounts(ctx context.Context) (*domain.PendingCounts, error) {
	inquiries, err := s.inquiryRepo.CountByStatus(ctx, domain.InquiryStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending inquiries: %w", err)
	}

	bookings, err := s.bookingRepo.CountByStatus(ctx, domain.BookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}

	return &domain.PendingCounts{
		Inquiries: inquiries,
		Bookings:  bookings,
		Total:     inquiries + bookings,
	}, nil
}
