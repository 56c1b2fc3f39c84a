package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OptionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOptionRepo(db *dbpg.DB) *OptionRepository {
	return &OptionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OptionRepository) Insert(ctx context.Context, o *domain.Option) error {
	metadata, err := json.Marshal(o.Metadata)
	if err != nil {
		return fmt.Errorf("marshal option metadata: %w", err)
	}

	query := `INSERT INTO options
			  (id, category, label, description, metadata, active, sort_order, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(
		ctx, query,
		o.ID, o.Category, o.Label, o.Description, metadata,
		o.Active, o.SortOrder, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert option: %w", err)
	}

	return nil
}

func (r *OptionRepository) Update(ctx context.Context, o *domain.Option) error {
	metadata, err := json.Marshal(o.Metadata)
	if err != nil {
		return fmt.Errorf("marshal option metadata: %w", err)
	}

	query := `UPDATE options
			  SET label = $2, description = $3, metadata = $4, active = $5,
			      sort_order = $6, updated_at = $7
			  WHERE id = $1`

	res, err := r.db.ExecContext(
		ctx, query,
		o.ID, o.Label, o.Description, metadata, o.Active, o.SortOrder, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update option: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("option rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOptionNotFound
	}

	return nil
}

func (r *OptionRepository) GetByID(ctx context.Context, id string) (*domain.Option, error) {
	query := `SELECT id, category, label, description, metadata, active, sort_order,
			  created_at, updated_at
			  FROM options
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get option: %w", err)
	}

	o, err := scanOption(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOptionNotFound
		}
		return nil, fmt.Errorf("scan option: %w", err)
	}

	return o, nil
}

// ListActive returns only what the wizard is allowed to offer: active options
// of one category in ascending sort order.
func (r *OptionRepository) ListActive(ctx context.Context, category domain.OptionCategory) ([]*domain.Option, error) {
	query := `SELECT id, category, label, description, metadata, active, sort_order,
			  created_at, updated_at
			  FROM options
			  WHERE category = $1 AND active = true
			  ORDER BY sort_order ASC`

	return r.list(ctx, query, category)
}

func (r *OptionRepository) ListAll(ctx context.Context) ([]*domain.Option, error) {
	query := `SELECT id, category, label, description, metadata, active, sort_order,
			  created_at, updated_at
			  FROM options
			  ORDER BY category ASC, sort_order ASC`

	return r.list(ctx, query)
}

func (r *OptionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Option, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}
	defer rows.Close()

	var res []*domain.Option
	for rows.Next() {
		o, err := scanOption(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

func scanOption(scan func(...any) error) (*domain.Option, error) {
	var (
		o        domain.Option
		metadata []byte
	)
	err := scan(
		&o.ID, &o.Category, &o.Label, &o.Description, &metadata,
		&o.Active, &o.SortOrder, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &o.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal option metadata: %w", err)
		}
	}

	return &o, nil
}
