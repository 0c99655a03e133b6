package pages

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Special is a weekly menu special. Name and Description hold raw JSON
// locale maps straight from storage; views resolve them per request with
// the localized-value resolver.
type Special struct {
	ID          uuid.UUID
	Name        []byte
	Description []byte
	PriceCents  int
	Position    int
	CreatedAt   time.Time
}

// Price renders the amount in euros, e.g. "28.50".
func (s Special) Price() string {
	return fmt.Sprintf("%d.%02d", s.PriceCents/100, s.PriceCents%100)
}

// Testimonial is a published guest quote. Quote is a raw JSON locale map.
type Testimonial struct {
	ID        uuid.UUID
	Author    string
	Quote     []byte
	Rating    int
	Position  int
	CreatedAt time.Time
}
