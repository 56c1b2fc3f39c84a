package ports

import (
	"context"

	"github.com/wanderlk/tripdesk/internal/domain"
)

type StaffNotifier interface {
	NotifyInquiryCreated(ctx context.Context, inq *domain.CustomInquiry)
	NotifyBookingCreated(ctx context.Context, b *domain.PackageBooking, pkg *domain.TravelPackage)
}
