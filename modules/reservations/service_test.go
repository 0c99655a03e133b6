package reservations_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/modules/reservations"
	"github.com/casaluz/website/pkg/validator"
)

type memStorage struct {
	mu    sync.Mutex
	items map[uuid.UUID]*reservations.Reservation
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[uuid.UUID]*reservations.Reservation)}
}

func (s *memStorage) Create(_ context.Context, r *reservations.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.UserID == r.UserID && existing.Date.Equal(r.Date) &&
			existing.TimeSlot == r.TimeSlot && existing.Status == reservations.StatusConfirmed {
			return reservations.ErrDuplicate
		}
	}
	copied := *r
	s.items[r.ID] = &copied
	return nil
}

func (s *memStorage) Get(_ context.Context, id uuid.UUID) (*reservations.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.items[id]
	if !ok {
		return nil, reservations.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *memStorage) ListByUser(_ context.Context, userID uuid.UUID) ([]*reservations.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservations.Reservation
	for _, r := range s.items {
		if r.UserID == userID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memStorage) Update(_ context.Context, r *reservations.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[r.ID]; !ok {
		return reservations.ErrNotFound
	}
	copied := *r
	s.items[r.ID] = &copied
	return nil
}

func (s *memStorage) CountSlot(_ context.Context, date time.Time, slot string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.items {
		if r.Date.Equal(date) && r.TimeSlot == slot && r.Status == reservations.StatusConfirmed {
			n++
		}
	}
	return n, nil
}

func tomorrow() time.Time {
	return time.Now().Truncate(24*time.Hour).AddDate(0, 0, 1)
}

func validInput() reservations.BookingInput {
	return reservations.BookingInput{
		Date:      tomorrow(),
		TimeSlot:  "19:00",
		PartySize: 4,
		Note:      "window table if possible",
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("books a table", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		userID := uuid.New()

		r, err := svc.Create(ctx, userID, validInput())
		require.NoError(t, err)
		assert.Equal(t, userID, r.UserID)
		assert.Equal(t, reservations.StatusConfirmed, r.Status)
		assert.Equal(t, "19:00", r.TimeSlot)
	})

	t.Run("note is cleaned of markup and extra whitespace", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		in := validInput()
		in.Note = "  <i>quiet</i> corner\n please "

		r, err := svc.Create(ctx, uuid.New(), in)
		require.NoError(t, err)
		assert.Equal(t, "quiet corner please", r.Note)
	})

	t.Run("rejects past date", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		in := validInput()
		in.Date = time.Now().AddDate(0, 0, -1)

		_, err := svc.Create(ctx, uuid.New(), in)
		ve := validator.Extract(err)
		require.NotNil(t, ve)
		assert.True(t, ve.Has("date"))
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		in := validInput()
		in.TimeSlot = "03:00"

		_, err := svc.Create(ctx, uuid.New(), in)
		ve := validator.Extract(err)
		require.NotNil(t, ve)
		assert.True(t, ve.Has("time_slot"))
	})

	t.Run("rejects party size out of bounds", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())

		for _, size := range []int{0, reservations.MaxPartySize + 1} {
			in := validInput()
			in.PartySize = size
			_, err := svc.Create(ctx, uuid.New(), in)
			ve := validator.Extract(err)
			require.NotNil(t, ve)
			assert.True(t, ve.Has("party_size"))
		}
	})

	t.Run("full slot closes", func(t *testing.T) {
		t.Parallel()

		store := newMemStorage()
		svc := reservations.NewService(store)

		for range reservations.SlotCapacity {
			_, err := svc.Create(ctx, uuid.New(), validInput())
			require.NoError(t, err)
		}

		_, err := svc.Create(ctx, uuid.New(), validInput())
		require.ErrorIs(t, err, reservations.ErrSlotFull)
	})

	t.Run("same user cannot double book a slot", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		userID := uuid.New()

		_, err := svc.Create(ctx, userID, validInput())
		require.NoError(t, err)
		_, err = svc.Create(ctx, userID, validInput())
		require.ErrorIs(t, err, reservations.ErrDuplicate)
	})
}

func TestOwnership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := reservations.NewService(newMemStorage())

	owner := uuid.New()
	stranger := uuid.New()

	r, err := svc.Create(ctx, owner, validInput())
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		_, err := svc.Get(ctx, stranger, r.ID)
		require.ErrorIs(t, err, reservations.ErrNotOwner)
	})

	t.Run("update", func(t *testing.T) {
		_, err := svc.Update(ctx, stranger, r.ID, validInput())
		require.ErrorIs(t, err, reservations.ErrNotOwner)
	})

	t.Run("cancel", func(t *testing.T) {
		_, err := svc.Cancel(ctx, stranger, r.ID)
		require.ErrorIs(t, err, reservations.ErrNotOwner)
	})

	t.Run("owner still passes", func(t *testing.T) {
		got, err := svc.Get(ctx, owner, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r.ID, got.ID)
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("edits booking details", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		userID := uuid.New()
		r, err := svc.Create(ctx, userID, validInput())
		require.NoError(t, err)

		in := validInput()
		in.TimeSlot = "20:00"
		in.PartySize = 6

		updated, err := svc.Update(ctx, userID, r.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "20:00", updated.TimeSlot)
		assert.Equal(t, 6, updated.PartySize)
	})

	t.Run("keeping own slot does not trip capacity", func(t *testing.T) {
		t.Parallel()

		store := newMemStorage()
		svc := reservations.NewService(store)
		userID := uuid.New()

		r, err := svc.Create(ctx, userID, validInput())
		require.NoError(t, err)

		for range reservations.SlotCapacity - 1 {
			_, err := svc.Create(ctx, uuid.New(), validInput())
			require.NoError(t, err)
		}

		in := validInput()
		in.PartySize = 2
		_, err = svc.Update(ctx, userID, r.ID, in)
		require.NoError(t, err)
	})

	t.Run("cancelled booking cannot be edited", func(t *testing.T) {
		t.Parallel()

		svc := reservations.NewService(newMemStorage())
		userID := uuid.New()
		r, err := svc.Create(ctx, userID, validInput())
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, userID, r.ID)
		require.NoError(t, err)

		_, err = svc.Update(ctx, userID, r.ID, validInput())
		require.ErrorIs(t, err, reservations.ErrCancelled)
	})
}

func TestCancel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := reservations.NewService(newMemStorage())
	userID := uuid.New()

	r, err := svc.Create(ctx, userID, validInput())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, userID, r.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsCancelled())

	_, err = svc.Cancel(ctx, userID, r.ID)
	require.ErrorIs(t, err, reservations.ErrCancelled)
}

func TestSlotAvailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := reservations.NewService(newMemStorage())

	ok, err := svc.SlotAvailable(ctx, tomorrow(), "19:00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.SlotAvailable(ctx, tomorrow(), "03:00")
	require.NoError(t, err)
	assert.False(t, ok)
}
