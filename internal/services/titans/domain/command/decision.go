package command

import (
	apperrors "github.com/louisbranch/titans/internal/platform/errors"
	"github.com/louisbranch/titans/internal/services/titans/domain/event"
)

// Decision represents the pure outcome of handling a command.
//
// A decision may carry both events and rejections: a refused move still
// clears the selection, so the clearing event travels with the rejection.
type Decision struct {
	Events     []event.Event
	Rejections []Rejection
}

// Rejection captures a domain-level reason a command was declined.
type Rejection struct {
	Code     string
	Message  string
	Metadata map[string]string
}

// Accept returns a decision that emits the provided events.
func Accept(events ...event.Event) Decision {
	return Decision{Events: append([]event.Event(nil), events...)}
}

// Reject returns a decision that carries the provided rejections.
func Reject(rejections ...Rejection) Decision {
	return Decision{Rejections: append([]Rejection(nil), rejections...)}
}

// Rejected reports whether the decision declined the command.
func (d Decision) Rejected() bool {
	return len(d.Rejections) > 0
}

// Err lifts the rejection into a domain error so callers can match on code.
func (r Rejection) Err() error {
	return apperrors.WithMetadata(apperrors.Code(r.Code), r.Message, r.Metadata)
}
