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

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, location, capacity, price_per_hour, description, amenities, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Location, v.Capacity, v.PricePerHour,
		v.Description, pq.Array(v.Amenities), v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, location, capacity, price_per_hour, description, amenities, created_at, updated_at
			  FROM venues
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(
		&v.ID, &v.Name, &v.Location, &v.Capacity, &v.PricePerHour,
		&v.Description, pq.Array(&v.Amenities), &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) List(ctx context.Context, q domain.VenueQuery) ([]*domain.Venue, int, error) {
	var (
		conds []string
		args  []any
	)
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR location ILIKE $%d)", len(args), len(args)))
	}
	if q.MinCapacity > 0 {
		args = append(args, q.MinCapacity)
		conds = append(conds, fmt.Sprintf("capacity >= $%d", len(args)))
	}
	if q.MaxPrice > 0 {
		args = append(args, q.MaxPrice)
		conds = append(conds, fmt.Sprintf("price_per_hour <= $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countRow, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM venues`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count venues: %w", err)
	}
	if err = countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan venue count: %w", err)
	}

	args = append(args, q.Limit, q.Offset())
	query := fmt.Sprintf(`SELECT id, name, location, capacity, price_per_hour, description, amenities, created_at, updated_at
			  FROM venues%s
			  ORDER BY created_at DESC
			  LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(
			&v.ID, &v.Name, &v.Location, &v.Capacity, &v.PricePerHour,
			&v.Description, pq.Array(&v.Amenities), &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, total, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, id string, input domain.UpdateVenueInput) (*domain.Venue, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if input.Name != nil {
		set("name", *input.Name)
	}
	if input.Location != nil {
		set("location", *input.Location)
	}
	if input.Capacity != nil {
		set("capacity", *input.Capacity)
	}
	if input.PricePerHour != nil {
		set("price_per_hour", *input.PricePerHour)
	}
	if input.Description != nil {
		set("description", *input.Description)
	}
	if input.Amenities != nil {
		set("amenities", pq.Array(*input.Amenities))
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE venues SET %s
			  WHERE id = $%d
			  RETURNING id, name, location, capacity, price_per_hour, description, amenities, created_at, updated_at`,
		strings.Join(sets, ", "), len(args))

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(
		&v.ID, &v.Name, &v.Location, &v.Capacity, &v.PricePerHour,
		&v.Description, pq.Array(&v.Amenities), &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan updated venue: %w", err)
	}

	return &v, nil
}

func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}
