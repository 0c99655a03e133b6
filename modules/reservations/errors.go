package reservations

import "errors"

var (
	ErrNotFound  = errors.New("reservations.not_found")
	ErrNotOwner  = errors.New("reservations.not_owner")
	ErrSlotFull  = errors.New("reservations.slot_full")
	ErrDuplicate = errors.New("reservations.duplicate_booking")
	ErrCancelled = errors.New("reservations.already_cancelled")
)
