package session

import "context"

// Store persists sessions keyed by token.
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error

	// DeleteByUserID revokes every session belonging to a user, used when
	// credentials change.
	DeleteByUserID(ctx context.Context, userID string) error
}
