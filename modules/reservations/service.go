package reservations

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/casaluz/website/pkg/sanitizer"
	"github.com/casaluz/website/pkg/validator"
)

// Service implements booking rules: future dates only, party size bounds,
// slot capacity, and strict per-user ownership on every mutation.
type Service struct {
	storage Storage
	now     func() time.Time
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage, now: time.Now}
}

// BookingInput is the user-editable part of a reservation.
type BookingInput struct {
	Date      time.Time
	TimeSlot  string
	PartySize int
	Note      string
}

// clean normalizes free-text fields before validation.
func (in BookingInput) clean() BookingInput {
	in.Note = sanitizer.Apply(in.Note,
		sanitizer.StripHTML,
		sanitizer.RemoveControlChars,
		sanitizer.CollapseWhitespace,
	)
	return in
}

func (s *Service) validate(in BookingInput) error {
	today := s.now().Truncate(24 * time.Hour)
	return validator.Apply(
		validator.Rule{
			Check: func() bool { return in.Date.After(today) },
			Error: validator.ValidationError{
				Field:          "date",
				Message:        "reservation date must be in the future",
				TranslationKey: "reservations.errors.date_in_past",
			},
		},
		validator.OneOf("time_slot", in.TimeSlot, OpenSlots()),
		validator.Between("party_size", in.PartySize, 1, MaxPartySize),
		validator.MaxLen("note", in.Note, 500),
	)
}

func (s *Service) checkCapacity(ctx context.Context, in BookingInput, exclude uuid.UUID) error {
	n, err := s.storage.CountSlot(ctx, in.Date, in.TimeSlot)
	if err != nil {
		return err
	}
	// An edit that keeps its own slot should not count itself out.
	if exclude != uuid.Nil {
		if cur, err := s.storage.Get(ctx, exclude); err == nil &&
			cur.Status == StatusConfirmed && cur.Date.Equal(in.Date) && cur.TimeSlot == in.TimeSlot {
			n--
		}
	}
	if n >= SlotCapacity {
		return ErrSlotFull
	}
	return nil
}

// Create books a table for the user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in BookingInput) (*Reservation, error) {
	in = in.clean()
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.checkCapacity(ctx, in, uuid.Nil); err != nil {
		return nil, err
	}

	now := s.now()
	r := &Reservation{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      in.Date,
		TimeSlot:  in.TimeSlot,
		PartySize: in.PartySize,
		Note:      in.Note,
		Status:    StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storage.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns the user's reservations, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Reservation, error) {
	return s.storage.ListByUser(ctx, userID)
}

// Get returns a single reservation, enforcing ownership.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Reservation, error) {
	r, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, ErrNotOwner
	}
	return r, nil
}

// Update rewrites the booking details. Only the owner may edit, and a
// cancelled booking stays cancelled.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in BookingInput) (*Reservation, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if r.IsCancelled() {
		return nil, ErrCancelled
	}

	in = in.clean()
	if err := s.validate(in); err != nil {
		return nil, err
	}
	if err := s.checkCapacity(ctx, in, r.ID); err != nil {
		return nil, err
	}

	r.Date = in.Date
	r.TimeSlot = in.TimeSlot
	r.PartySize = in.PartySize
	r.Note = in.Note
	r.UpdatedAt = s.now()

	if err := s.storage.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Cancel marks the booking cancelled. Only the owner may cancel.
func (s *Service) Cancel(ctx context.Context, userID, id uuid.UUID) (*Reservation, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if r.IsCancelled() {
		return nil, ErrCancelled
	}

	r.Status = StatusCancelled
	r.UpdatedAt = s.now()

	if err := s.storage.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SlotAvailable reports whether a slot still has capacity on a date.
func (s *Service) SlotAvailable(ctx context.Context, date time.Time, slot string) (bool, error) {
	if !slices.Contains(OpenSlots(), slot) {
		return false, nil
	}
	n, err := s.storage.CountSlot(ctx, date, slot)
	if err != nil {
		return false, err
	}
	return n < SlotCapacity, nil
}
