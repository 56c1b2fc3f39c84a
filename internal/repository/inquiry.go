package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InquiryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInquiryRepo(db *dbpg.DB) *InquiryRepository {
	return &InquiryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *InquiryRepository) Insert(ctx context.Context, inq *domain.CustomInquiry) error {
	query := `INSERT INTO custom_inquiries
			  (id, customer_name, customer_email, customer_phone, destinations, interests,
			   budget_range, arrival_date, departure_date, number_of_adults,
			   number_of_children, number_of_infants, notes, status, admin_notes,
			   created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(
		ctx, query,
		inq.ID, inq.CustomerName, inq.CustomerEmail, inq.CustomerPhone,
		pq.Array(inq.Destinations), pq.Array(inq.Interests),
		inq.BudgetRange, inq.ArrivalDate, inq.DepartureDate,
		inq.NumberOfAdults, inq.NumberOfChildren, inq.NumberOfInfants,
		inq.Notes, inq.Status, inq.AdminNotes, inq.CreatedAt, inq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}

	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*domain.CustomInquiry, error) {
	query := `SELECT id, customer_name, customer_email, customer_phone, destinations,
			  interests, budget_range, arrival_date, departure_date, number_of_adults,
			  number_of_children, number_of_infants, notes, status, admin_notes,
			  created_at, updated_at
			  FROM custom_inquiries
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}

	inq, err := scanInquiry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("scan inquiry: %w", err)
	}

	return inq, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error {
	query := `UPDATE custom_inquiries
			  SET status = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inquiry rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInquiryNotFound
	}

	return nil
}

func (r *InquiryRepository) UpdateAdminNotes(ctx context.Context, id string, notes string) error {
	query := `UPDATE custom_inquiries
			  SET admin_notes = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, notes)
	if err != nil {
		return fmt.Errorf("update admin notes: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inquiry rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInquiryNotFound
	}

	return nil
}

func (r *InquiryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.CustomInquiry, error) {
	query := `SELECT id, customer_name, customer_email, customer_phone, destinations,
			  interests, budget_range, arrival_date, departure_date, number_of_adults,
			  number_of_children, number_of_infants, notes, status, admin_notes,
			  created_at, updated_at
			  FROM custom_inquiries
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent inquiries: %w", err)
	}
	defer rows.Close()

	var res []*domain.CustomInquiry
	for rows.Next() {
		inq, err := scanInquiry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		res = append(res, inq)
	}

	return res, rows.Err()
}

func (r *InquiryRepository) CountByStatus(ctx context.Context, status domain.InquiryStatus) (int, error) {
	query := `SELECT COUNT(*) FROM custom_inquiries WHERE status = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan inquiry count: %w", err)
	}

	return count, nil
}

func scanInquiry(scan func(...any) error) (*domain.CustomInquiry, error) {
	var inq domain.CustomInquiry
	err := scan(
		&inq.ID, &inq.CustomerName, &inq.CustomerEmail, &inq.CustomerPhone,
		pq.Array(&inq.Destinations), pq.Array(&inq.Interests),
		&inq.BudgetRange, &inq.ArrivalDate, &inq.DepartureDate,
		&inq.NumberOfAdults, &inq.NumberOfChildren, &inq.NumberOfInfants,
		&inq.Notes, &inq.Status, &inq.AdminNotes, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}
