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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Insert(ctx context.Context, b *domain.PackageBooking) error {
	query := `INSERT INTO package_bookings
			  (id, package_id, customer_name, customer_email, customer_phone,
			   travel_date, number_of_people, total_amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(
		ctx, query,
		b.ID, b.PackageID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.TravelDate, b.NumberOfPeople, b.TotalAmount, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.PackageBooking, error) {
	query := `SELECT id, package_id, customer_name, customer_email, customer_phone,
			  travel_date, number_of_people, total_amount, status, created_at, updated_at
			  FROM package_bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.PackageBooking
	if err := row.Scan(
		&b.ID, &b.PackageID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.TravelDate, &b.NumberOfPeople, &b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE package_bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]*domain.PackageBooking, error) {
	query := `SELECT id, package_id, customer_name, customer_email, customer_phone,
			  travel_date, number_of_people, total_amount, status, created_at, updated_at
			  FROM package_bookings
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.PackageBooking
	for rows.Next() {
		var b domain.PackageBooking
		if err := rows.Scan(
			&b.ID, &b.PackageID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
			&b.TravelDate, &b.NumberOfPeople, &b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int, error) {
	query := `SELECT COUNT(*) FROM package_bookings WHERE status = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan booking count: %w", err)
	}

	return count, nil
}
