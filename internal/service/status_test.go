package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/service/ports/mocks"
)

func TestStatusService_SetInquiryStatus(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	inquiryRepo.EXPECT().UpdateStatus(mock.Anything, "inq-1", domain.InquiryStatusContacted).Return(nil)

	err := svc.SetInquiryStatus(context.Background(), "inq-1", "contacted")

	require.NoError(t, err)
}

func TestStatusService_SetInquiryStatus_RejectsBookingVocabulary(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	// "confirmed" belongs to bookings; no write may happen
	err := svc.SetInquiryStatus(context.Background(), "inq-1", "confirmed")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStatusService_SetInquiryStatus_NotFound(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	inquiryRepo.EXPECT().UpdateStatus(mock.Anything, "missing", domain.InquiryStatusArchived).Return(domain.ErrInquiryNotFound)

	err := svc.SetInquiryStatus(context.Background(), "missing", "archived")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInquiryNotFound)
}

func TestStatusService_SetInquiryStatus_ArchivedBackToPending(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	// flat vocabulary: no one-way transitions
	inquiryRepo.EXPECT().UpdateStatus(mock.Anything, "inq-1", domain.InquiryStatusPending).Return(nil)

	err := svc.SetInquiryStatus(context.Background(), "inq-1", "pending")

	require.NoError(t, err)
}

func TestStatusService_SetBookingStatus(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "bk-1", domain.BookingStatusConfirmed).Return(nil)

	err := svc.SetBookingStatus(context.Background(), "bk-1", "confirmed")

	require.NoError(t, err)
}

func TestStatusService_SetBookingStatus_RejectsInquiryVocabulary(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	err := svc.SetBookingStatus(context.Background(), "bk-1", "reviewed")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStatusService_SetInquiryAdminNotes(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	inquiryRepo.EXPECT().UpdateAdminNotes(mock.Anything, "inq-1", "called, call back tuesday").Return(nil)

	err := svc.SetInquiryAdminNotes(context.Background(), "inq-1", "called, call back tuesday")

	require.NoError(t, err)
}

func TestStatusService_SetInquiryAdminNotes_NotFound(t *testing.T) {
	inquiryRepo := mocks.NewMockInquiryRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewStatusService(inquiryRepo, bookingRepo, newTestLogger(t))

	inquiryRepo.EXPECT().UpdateAdminNotes(mock.Anything, "missing", "note").Return(domain.ErrInquiryNotFound)

	err := svc.SetInquiryAdminNotes(context.Background(), "missing", "note")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInquiryNotFound)
}
