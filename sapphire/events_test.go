package sapphire

import (
	"errors"
	"testing"
)

func TestEventsCanonicalOrder(t *testing.T) {
	want := []string{
		"1-in-10-year",
		"1-in-20-year",
		"1-in-50-year",
		"1-in-100-year",
		"1-in-300-year",
		"1-in-1000-year",
		"1-in-10000-year",
	}

	events := Events()
	if len(events) != len(want) {
		t.Fatalf("Events() returned %d events, want %d", len(events), len(want))
	}

	for i, ev := range events {
		if ev.String() != want[i] {
			t.Errorf("Events()[%d] = %q, want %q", i, ev.String(), want[i])
		}
	}
}

func TestParseEventRoundTrip(t *testing.T) {
	for _, ev := range Events() {
		got, err := ParseEvent(ev.String())
		if err != nil {
			t.Fatalf("ParseEvent(%q): %v", ev.String(), err)
		}

		if got != ev {
			t.Errorf("ParseEvent(%q) = %v, want %v", ev.String(), got, ev)
		}
	}
}

func TestParseEventUnknown(t *testing.T) {
	tests := []string{
		"1-in-7-year",
		"1-in-100-years",
		"",
		"100-year",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParseEvent(s)
			if !errors.Is(err, ErrUnknownEvent) {
				t.Errorf("ParseEvent(%q) error = %v, want %v", s, err, ErrUnknownEvent)
			}
		})
	}
}

func TestEventStringOutOfRange(t *testing.T) {
	if got := Event(42).String(); got != "sapphire.Event(42)" {
		t.Errorf("Event(42).String() = %q", got)
	}
}

func TestQuantityString(t *testing.T) {
	if Fluence.String() != "fluence" || PeakFlux.String() != "peak flux" {
		t.Errorf("Quantity strings = %q, %q", Fluence.String(), PeakFlux.String())
	}
}
