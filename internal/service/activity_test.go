package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/service/ports/mocks"
)

func TestActivityService_RecentActivity_MergesBothKinds(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewActivityService(inquiryRepo, bookingRepo)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	inquiries := make([]*domain.CustomInquiry, 0, 3)
	for i := 0; i < 3; i++ {
		inquiries = append(inquiries, &domain.CustomInquiry{
			ID:           fmt.Sprintf("inq-%d", i),
			CustomerName: "Jane",
			Destinations: []string{"Hill Country"},
			Status:       domain.InquiryStatusPending,
			CreatedAt:    base.Add(time.Duration(i*2) * time.Hour),
		})
	}
	bookings := make([]*domain.PackageBooking, 0, 4)
	for i := 0; i < 4; i++ {
		bookings = append(bookings, &domain.PackageBooking{
			ID:             fmt.Sprintf("bk-%d", i),
			CustomerName:   "John",
			PackageID:      "pkg-1",
			NumberOfPeople: 2,
			Status:         domain.BookingStatusPending,
			CreatedAt:      base.Add(time.Duration(i*2+1) * time.Hour),
		})
	}

	inquiryRepo.EXPECT().ListRecent(mock.Anything, 5).Return(inquiries, nil)
	bookingRepo.EXPECT().ListRecent(mock.Anything, 5).Return(bookings, nil)

	items, err := svc.RecentActivity(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, items, 5)

	// strictly newest first across both kinds
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}

	// interleaving: bk-3, inq-2, bk-2, inq-1, bk-1
	assert.Equal(t, "bk-3", items[0].ID)
	assert.Equal(t, domain.ActivityBooking, items[0].Type)
	assert.Equal(t, "inq-2", items[1].ID)
	assert.Equal(t, domain.ActivityInquiry, items[1].Type)
	assert.Equal(t, "bk-1", items[4].ID)
}

func TestActivityService_RecentActivity_DefaultLimit(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewActivityService(inquiryRepo, bookingRepo)

	inquiryRepo.EXPECT().ListRecent(mock.Anything, 10).Return(nil, nil)
	bookingRepo.EXPECT().ListRecent(mock.Anything, 10).Return(nil, nil)

	items, err := svc.RecentActivity(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestActivityService_RecentActivity_InquiryError(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewActivityService(inquiryRepo, bookingRepo)

	inquiryRepo.EXPECT().ListRecent(mock.Anything, 5).Return(nil, errors.New("db down"))

	items, err := svc.RecentActivity(context.Background(), 5)

	assert.Nil(t, items)
	require.Error(t, err)
}

func TestActivityService_PendingCounts(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewActivityService(inquiryRepo, bookingRepo)

	inquiryRepo.EXPECT().CountByStatus(mock.Anything, domain.InquiryStatusPending).Return(3, nil)
	bookingRepo.EXPECT().CountByStatus(mock.Anything, domain.BookingStatusPending).Return(4, nil)

	counts, err := svc.PendingCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, counts.Inquiries)
	assert.Equal(t, 4, counts.Bookings)
	assert.Equal(t, 7, counts.Total)
}

func TestActivityService_PendingCounts_BookingError(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewActivityService(inquiryRepo, bookingRepo)

	inquiryRepo.EXPECT().CountByStatus(mock.Anything, domain.InquiryStatusPending).Return(3, nil)
	bookingRepo.EXPECT().CountByStatus(mock.Anything, domain.BookingStatusPending).Return(0, errors.New("db down"))

	counts, err := svc.PendingCounts(context.Background())

	assert.Nil(t, counts)
	require.Error(t, err)
}
