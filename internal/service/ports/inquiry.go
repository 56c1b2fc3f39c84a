package ports

import (
	"context"

	"github.com/wanderlk/tripdesk/internal/domain"
)

type InquiryRepo interface {
	Insert(ctx context.Context, inq *domain.CustomInquiry) error
	GetByID(ctx context.Context, id string) (*domain.CustomInquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error
	UpdateAdminNotes(ctx context.Context, id string, notes string) error
	ListRecent(ctx context.Context, limit int) ([]*domain.CustomInquiry, error)
	CountByStatus(ctx context.Context, status domain.InquiryStatus) (int, error)
}
