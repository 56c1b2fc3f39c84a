package ports

import (
	"context"

	"github.com/wanderlk/tripdesk/internal/domain"
)

type OptionRepo interface {
	Insert(ctx context.Context, o *domain.Option) error
	Update(ctx context.Context, o *domain.Option) error
	GetByID(ctx context.Context, id string) (*domain.Option, error)
	ListActive(ctx context.Context, category domain.OptionCategory) ([]*domain.Option, error)
	ListAll(ctx context.Context) ([]*domain.Option, error)
}
