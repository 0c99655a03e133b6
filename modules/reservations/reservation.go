package reservations

import (
	"time"

	"github.com/google/uuid"
)

// Status values for a reservation.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation is a table booking for a given date and seating slot.
type Reservation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time // date only, local to the restaurant
	TimeSlot  string    // "19:00" style label, one of OpenSlots
	PartySize int
	Note      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the booking was cancelled.
func (r *Reservation) IsCancelled() bool {
	return r != nil && r.Status == StatusCancelled
}

// OpenSlots are the seatings the dining room offers. Kitchen hours, not
// configuration: the set changes only when service hours do.
func OpenSlots() []string {
	return []string{
		"12:00", "12:30", "13:00", "13:30", "14:00",
		"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
	}
}

// MaxPartySize is the largest group a single online booking may hold.
const MaxPartySize = 12

// SlotCapacity is how many confirmed bookings one slot holds before it
// closes.
const SlotCapacity = 8
