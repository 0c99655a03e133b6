package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists sessions in the sessions table so they survive process
// restarts and can be shared across instances.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Create(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(sess.Data)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO sessions (id, token, user_id, data, expires_at, last_activity_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sess.ID, sess.Token, sess.UserID, data, sess.ExpiresAt, sess.LastActivityAt, sess.CreatedAt,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, token string) (*Session, error) {
	var (
		sess Session
		data []byte
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, token, user_id, data, expires_at, last_activity_at, created_at
		FROM sessions WHERE token = $1`,
		token,
	).Scan(&sess.ID, &sess.Token, &sess.UserID, &data, &sess.ExpiresAt, &sess.LastActivityAt, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if sess.IsExpired() {
		_, _ = s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
		return nil, ErrExpired
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &sess.Data); err != nil {
			return nil, errors.Join(ErrInvalidSession, err)
		}
	}

	return &sess, nil
}

func (s *PGStore) Update(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	data, err := json.Marshal(sess.Data)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE sessions
		SET user_id = $2, data = $3, expires_at = $4, last_activity_at = $5
		WHERE token = $1`,
		sess.Token, sess.UserID, data, sess.ExpiresAt, sess.LastActivityAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, token string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (s *PGStore) DeleteExpired(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	return err
}

func (s *PGStore) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}
