package pages

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage reads the marketing content shown on the home page.
type Storage interface {
	ActiveSpecials(ctx context.Context) ([]Special, error)
	PublishedTestimonials(ctx context.Context) ([]Testimonial, error)
}

// PGStorage is the Postgres-backed Storage.
type PGStorage struct {
	pool *pgxpool.Pool
}

func NewPGStorage(pool *pgxpool.Pool) *PGStorage {
	return &PGStorage{pool: pool}
}

func (s *PGStorage) ActiveSpecials(ctx context.Context) ([]Special, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, price_cents, position, created_at
		FROM specials WHERE active ORDER BY position, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Special
	for rows.Next() {
		var sp Special
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Description, &sp.PriceCents, &sp.Position, &sp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *PGStorage) PublishedTestimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, author, quote, rating, position, created_at
		FROM testimonials WHERE published ORDER BY position, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Testimonial
	for rows.Next() {
		var tm Testimonial
		if err := rows.Scan(&tm.ID, &tm.Author, &tm.Quote, &tm.Rating, &tm.Position, &tm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, tm)
	}
	return out, rows.Err()
}
