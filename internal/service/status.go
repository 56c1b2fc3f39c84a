package service

import (
	"context"
	"fmt"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// StatusService enforces the per-kind status vocabularies and performs the
// transition writes. The vocabularies are flat sets: any member may move to
// any other member, including archived back to pending.
type StatusService struct {
	inquiryRepo ports.InquiryRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewStatusService(inquiryRepo ports.InquiryRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *StatusService {
	return &StatusService{
		inquiryRepo: inquiryRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// SetInquiryStatus rejects values outside the inquiry vocabulary before
// touching storage; an invalid status performs no write.
func (s *StatusService) SetInquiryStatus(ctx context.Context, id, status string) error {
	parsed, err := domain.ParseInquiryStatus(status)
	if err != nil {
		return err
	}

	if err := s.inquiryRepo.UpdateStatus(ctx, id, parsed); err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}

	s.logger.Info("inquiry status updated",
		logger.String("inquiry_id", id),
		logger.String("status", status),
	)
	return nil
}

func (s *StatusService) SetBookingStatus(ctx context.Context, id, status string) error {
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, parsed); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", id),
		logger.String("status", status),
	)
	return nil
}

// SetInquiryAdminNotes replaces the single admin-notes field. Last write wins.
func (s *StatusService) SetInquiryAdminNotes(ctx context.Context, id, notes string) error {
	if err := s.inquiryRepo.UpdateAdminNotes(ctx, id, notes); err != nil {
		return fmt.Errorf("update admin notes: %w", err)
	}

	s.logger.Info("inquiry admin notes updated",
		logger.String("inquiry_id", id),
	)
	return nil
}
