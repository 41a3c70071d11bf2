package sapphire

import (
	"errors"
	"fmt"
)

// Errors returned by event and parameter lookups.
var (
	ErrUnknownEvent    = errors.New("sapphire: unknown event")
	ErrUnknownQuantity = errors.New("sapphire: unknown quantity")
)

// Event identifies a SAPPHIRE event by its return period.
type Event int

const (
	OneIn10Year Event = iota
	OneIn20Year
	OneIn50Year
	OneIn100Year
	OneIn300Year
	OneIn1000Year
	OneIn10000Year

	numEvents
)

var eventNames = [numEvents]string{
	OneIn10Year:    "1-in-10-year",
	OneIn20Year:    "1-in-20-year",
	OneIn50Year:    "1-in-50-year",
	OneIn100Year:   "1-in-100-year",
	OneIn300Year:   "1-in-300-year",
	OneIn1000Year:  "1-in-1000-year",
	OneIn10000Year: "1-in-10000-year",
}

// String returns the canonical return-period identifier, e.g.
// "1-in-100-year".
func (e Event) String() string {
	if !e.valid() {
		return fmt.Sprintf("sapphire.Event(%d)", int(e))
	}

	return eventNames[e]
}

func (e Event) valid() bool {
	return e >= 0 && e < numEvents
}

// Events returns all SAPPHIRE events in canonical order, from the
// 1-in-10-year to the 1-in-10000-year event.
func Events() []Event {
	out := make([]Event, numEvents)
	for i := range out {
		out[i] = Event(i)
	}

	return out
}

// ParseEvent maps a return-period identifier such as "1-in-100-year" to
// its Event. Identifiers outside the canonical set fail with
// ErrUnknownEvent.
func ParseEvent(s string) (Event, error) {
	for i, name := range eventNames {
		if name == s {
			return Event(i), nil
		}
	}

	return 0, fmt.Errorf("sapphire: event %q: %w", s, ErrUnknownEvent)
}

// Quantity selects which spectral quantity a parameter set describes.
type Quantity int

const (
	// Fluence is the event-integrated fluence (particles/cm²/sr).
	Fluence Quantity = iota

	// PeakFlux is the event peak flux (particles/cm²/sr/s).
	PeakFlux
)

// String returns a human-readable quantity name.
func (q Quantity) String() string {
	switch q {
	case Fluence:
		return "fluence"
	case PeakFlux:
		return "peak flux"
	default:
		return fmt.Sprintf("sapphire.Quantity(%d)", int(q))
	}
}
