package ports

import (
	"context"

	"github.com/wanderlk/tripdesk/internal/domain"
)

type BookingRepo interface {
	Insert(ctx context.Context, b *domain.PackageBooking) error
	GetByID(ctx context.Context, id string) (*domain.PackageBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListRecent(ctx context.Context, limit int) ([]*domain.PackageBooking, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error)
}

type PackageRepo interface {
	GetByID(ctx context.Context, id string) (*domain.TravelPackage, error)
}
