package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casaluz/website/pkg/pg"
)

// Storage persists reservations.
type Storage interface {
	Create(ctx context.Context, r *Reservation) error
	Get(ctx context.Context, id uuid.UUID) (*Reservation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	CountSlot(ctx context.Context, date time.Time, slot string) (int, error)
}

// PGStorage is the Postgres-backed Storage.
type PGStorage struct {
	pool *pgxpool.Pool
}

func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

func (s *PGStorage) Create(ctx context.Context, r *Reservation) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO reservations (id, user_id, reserved_on, time_slot, party_size, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.UserID, r.Date, r.TimeSlot, r.PartySize, r.Note, r.Status, r.CreatedAt, r.UpdatedAt,
	)
	if pg.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *PGStorage) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var r Reservation
	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, reserved_on, time_slot, party_size, note, status, created_at, updated_at
		FROM reservations WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.Date, &r.TimeSlot, &r.PartySize, &r.Note, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *PGStorage) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Reservation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, reserved_on, time_slot, party_size, note, status, created_at, updated_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY reserved_on DESC, time_slot DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.TimeSlot, &r.PartySize, &r.Note, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (s *PGStorage) Update(ctx context.Context, r *Reservation) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE reservations
		SET reserved_on = $2, time_slot = $3, party_size = $4, note = $5, status = $6, updated_at = $7
		WHERE id = $1`,
		r.ID, r.Date, r.TimeSlot, r.PartySize, r.Note, r.Status, r.UpdatedAt,
	)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStorage) CountSlot(ctx context.Context, date time.Time, slot string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FROM reservations
		WHERE reserved_on = $1 AND time_slot = $2 AND status = 'confirmed'`,
		date, slot,
	).Scan(&n)
	return n, err
}
