package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, venue_id, customer_name, customer_email, start_time, end_time, total_price, status, created_at, updated_at`

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

// Create inserts the booking after re-checking availability inside a
// transaction. The venue row is locked FOR UPDATE so concurrent admissions
// for the same venue serialize on the check-then-write sequence; the
// exclusion constraint on (venue_id, interval) backstops it at the schema
// level.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	venueQuery := `SELECT id FROM venues WHERE id = $1 FOR UPDATE`
	var venueID string
	if err = tx.QueryRowContext(ctx, venueQuery, b.VenueID).Scan(&venueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("lock venue: %w", err)
	}

	conflictQuery := `SELECT COUNT(*) FROM bookings
			  WHERE venue_id = $1
			    AND status <> $2
			    AND start_time < $4
			    AND end_time > $3`
	var conflicts int
	if err = tx.QueryRowContext(
		ctx, conflictQuery, b.VenueID,
		domain.BookingStatusCancelled, b.Interval.Start, b.Interval.End,
	).Scan(&conflicts); err != nil {
		return fmt.Errorf("count conflicts: %w", err)
	}

	if conflicts > 0 {
		return domain.ErrVenueUnavailable
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.VenueID, b.CustomerName, b.CustomerEmail,
		b.Interval.Start, b.Interval.End, b.TotalPrice, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)

	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return domain.ErrVenueUnavailable
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, q domain.BookingQuery) ([]*domain.Booking, int, error) {
	var (
		conds []string
		args  []any
	)
	if q.VenueID != "" {
		args = append(args, q.VenueID)
		conds = append(conds, fmt.Sprintf("venue_id = $%d", len(args)))
	}
	if q.Status != "" {
		args = append(args, q.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countRow, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM bookings`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	if err = countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan booking count: %w", err)
	}

	args = append(args, q.Limit, q.Offset())
	query := fmt.Sprintf(`SELECT `+bookingColumns+`
			  FROM bookings%s
			  ORDER BY created_at DESC
			  LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return res, total, rows.Err()
}

func (r *BookingRepository) ListActiveByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE venue_id = $1 AND status <> $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	defer rows.Close()

	res, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE venue_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by venue: %w", err)
	}
	defer rows.Close()

	res, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	return res, rows.Err()
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
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

func (r *BookingRepository) PurgeCancelled(ctx context.Context, endedBefore time.Time) (int64, error) {
	query := `DELETE FROM bookings
			  WHERE status = $1 AND end_time < $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, domain.BookingStatusCancelled, endedBefore)
	if err != nil {
		return 0, fmt.Errorf("purge cancelled bookings: %w", err)
	}

	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.VenueID, &b.CustomerName, &b.CustomerEmail,
		&b.Interval.Start, &b.Interval.End, &b.TotalPrice, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, nil
}
