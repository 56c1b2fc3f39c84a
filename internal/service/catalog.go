package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CatalogService serves wizard choices and lets staff curate them. The
// wizard only ever sees active options in sort order.
type CatalogService struct {
	optionRepo ports.OptionRepo
	logger     logger.Logger
}

func NewCatalogService(optionRepo ports.OptionRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{optionRepo: optionRepo, logger: logger}
}

func (s *CatalogService) ListOptions(ctx context.Context, category string) ([]*domain.Option, error) {
	parsed, err := domain.ParseOptionCategory(category)
	if err != nil {
		return nil, err
	}
	return s.optionRepo.ListActive(ctx, parsed)
}

func (s *CatalogService) ListAllOptions(ctx context.Context) ([]*domain.Option, error) {
	return s.optionRepo.ListAll(ctx)
}

func (s *CatalogService) CreateOption(ctx context.Context, input domain.CreateOptionInput) (*domain.Option, error) {
	if strings.TrimSpace(input.Label) == "" {
		return nil, fmt.Errorf("%w: option label is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	option := &domain.Option{
		ID:          uuid.New().String(),
		Category:    input.Category,
		Label:       strings.TrimSpace(input.Label),
		Description: input.Description,
		Metadata:    input.Metadata,
		Active:      true,
		SortOrder:   input.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.optionRepo.Insert(ctx, option); err != nil {
		return nil, fmt.Errorf("insert option: %w", err)
	}

	s.logger.Info("option created",
		logger.String("option_id", option.ID),
		logger.String("category", string(option.Category)),
		logger.String("label", option.Label),
	)
	return option, nil
}

// UpdateOption applies the provided fields; nil pointers leave the current
// value untouched. Deactivation is Active=false, never a delete.
func (s *CatalogService) UpdateOption(ctx context.Context, id string, input domain.UpdateOptionInput) (*domain.Option, error) {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get option: %w", err)
	}

	if input.Label != nil {
		if strings.TrimSpace(*input.Label) == "" {
			return nil, fmt.Errorf("%w: option label is required", domain.ErrValidation)
		}
		option.Label = strings.TrimSpace(*input.Label)
	}
	if input.Description != nil {
		option.Description = *input.Description
	}
	if input.Metadata != nil {
		option.Metadata = input.Metadata
	}
	if input.Active != nil {
		option.Active = *input.Active
	}
	if input.SortOrder != nil {
		option.SortOrder = *input.SortOrder
	}
	option.UpdatedAt = time.Now().UTC()

	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, fmt.Errorf("update option: %w", err)
	}

	s.logger.Info("option updated",
		logger.String("option_id", option.ID),
		logger.String("label", option.Label),
	)
	return option, nil
}
