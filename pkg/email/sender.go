package email

import (
	"context"

	"github.com/casaluz/website/pkg/validator"
)

// Sender delivers transactional email. The auth module uses it for
// verification messages, reservations for confirmations.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	BodyHTML string
	Tag      string
}

func (m Message) validate() error {
	return validator.Apply(
		validator.Required("to", m.To),
		validator.ValidEmail("to", m.To),
		validator.Required("subject", m.Subject),
		validator.Required("body_html", m.BodyHTML),
	)
}
