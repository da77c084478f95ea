package models

type AttendeeStatus string

const (
	StatusPending   AttendeeStatus = "pending"
	StatusConfirmed AttendeeStatus = "confirmed"
	StatusDeclined  AttendeeStatus = "declined"
)

// Valid reports whether s is one of the three enumerated statuses.
func (s AttendeeStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	}
	return false
}

type Attendee struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Status AttendeeStatus `json:"status"`
}

type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	Attendees   []Attendee `json:"attendees"`
}

// Clone returns a copy of the event with its own attendee slice, so mutations
// of the copy never show through to the original.
func (e Event) Clone() Event {
	attendees := make([]Attendee, len(e.Attendees))
	copy(attendees, e.Attendees)
	e.Attendees = attendees
	return e
}

// Normalize guarantees a non-nil attendee slice. Stored snapshots may omit
// the attendees field entirely.
func (e *Event) Normalize() {
	if e.Attendees == nil {
		e.Attendees = []Attendee{}
	}
}
