package values

import (
	"fmt"
	"strings"
)

// Event is an inbound form event.
type Event string

const (
	EventNameChanged     Event = "name"
	EventPasswordChanged Event = "password"
	EventSubmit          Event = "submit"
	EventDismiss         Event = "dismiss"
)

// ParseEvent parses an event name
func ParseEvent(s string) (Event, error) {
	e := Event(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case EventNameChanged, EventPasswordChanged, EventSubmit, EventDismiss:
		return e, nil
	default:
		return "", fmt.Errorf("unknown event: %q", s)
	}
}

// CarriesValue returns true for field change events
func (e Event) CarriesValue() bool {
	return e == EventNameChanged || e == EventPasswordChanged
}

// Field returns the field a change event targets
func (e Event) Field() (FieldID, bool) {
	switch e {
	case EventNameChanged:
		return FieldName, true
	case EventPasswordChanged:
		return FieldPassword, true
	default:
		return "", false
	}
}
