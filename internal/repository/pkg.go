package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PackageRepository reads the minimal package slice the intake pipeline
// needs. Packages are curated outside this service.
type PackageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPackageRepo(db *dbpg.DB) *PackageRepository {
	return &PackageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*domain.TravelPackage, error) {
	query := `SELECT id, title, price_usd, active
			  FROM packages
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	var p domain.TravelPackage
	if err := row.Scan(&p.ID, &p.Title, &p.PriceUSD, &p.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}

	return &p, nil
}
