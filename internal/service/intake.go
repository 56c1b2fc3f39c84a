package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/service/ports"
	"github.com/wanderlk/tripdesk/internal/validate"
	"github.com/wb-go/wbf/logger"
)

// IntakeService turns validated intake input into persisted requests.
// Normalization is pure, persistence is a single insert, so a failed
// submission is always safe to retry.
type IntakeService struct {
	validator   *validate.Validator
	inquiryRepo ports.InquiryRepo
	bookingRepo ports.BookingRepo
	packageRepo ports.PackageRepo
	notifier    ports.StaffNotifier
	logger      logger.Logger
}

func NewIntakeService(
	validator *validate.Validator,
	inquiryRepo ports.InquiryRepo,
	bookingRepo ports.BookingRepo,
	packageRepo ports.PackageRepo,
	notifier ports.StaffNotifier,
	logger logger.Logger,
) *IntakeService {
	return &IntakeService{
		validator:   validator,
		inquiryRepo: inquiryRepo,
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// SubmitCustomTrip normalizes a completed draft and stores it as a pending
// inquiry. Field errors come back as domain.FieldErrors and are the user's to
// fix; they are not system faults and are not logged as such.
func (s *IntakeService) SubmitCustomTrip(ctx context.Context, draft *domain.DraftRequest) (*domain.CustomInquiry, error) {
	inquiry, errs := s.validator.NormalizeDraft(draft)
	if len(errs) > 0 {
		return nil, errs
	}

	now := time.Now().UTC()
	inquiry.ID = uuid.New().String()
	inquiry.Status = domain.InquiryStatusPending
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	if err := s.inquiryRepo.Insert(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}

	s.logger.Info("custom inquiry created",
		logger.String("inquiry_id", inquiry.ID),
		logger.String("customer_email", inquiry.CustomerEmail),
		logger.Int("destinations", len(inquiry.Destinations)),
	)

	go s.notifier.NotifyInquiryCreated(context.WithoutCancel(ctx), inquiry)

	return inquiry, nil
}

// SubmitPackageBooking validates the single-step package form, checks the
// target package exists, and stores a pending booking with the total derived
// from the package price.
func (s *IntakeService) SubmitPackageBooking(ctx context.Context, input *domain.BookingInput) (*domain.PackageBooking, error) {
	booking, errs := s.validator.NormalizeBooking(input)
	if len(errs) > 0 {
		return nil, errs
	}

	pkg, err := s.packageRepo.GetByID(ctx, booking.PackageID)
	if err != nil {
		return nil, fmt.Errorf("check package: %w", err)
	}

	if pkg.PriceUSD > 0 {
		total := pkg.PriceUSD * int64(booking.NumberOfPeople)
		booking.TotalAmount = &total
	}

	now := time.Now().UTC()
	booking.ID = uuid.New().String()
	booking.Status = domain.BookingStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	s.logger.Info("package booking created",
		logger.String("booking_id", booking.ID),
		logger.String("package_id", booking.PackageID),
		logger.Int("people", booking.NumberOfPeople),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, pkg)

	return booking, nil
}
