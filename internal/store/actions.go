package store

import (
	"github.com/idiya2016/event-dashboard/internal/models"
)

// Action is the closed set of state transitions. The unexported marker method
// seals the set: no action can be defined outside this package, so Transition
// handles every possible tag.
type Action interface {
	isAction()
}

// ReplaceAll swaps in a complete event collection.
type ReplaceAll struct {
	Events []models.Event
}

// AddEvent appends an event to the end of the collection.
type AddEvent struct {
	Event models.Event
}

// UpdateEvent replaces the event whose id matches. No-op if no match.
type UpdateEvent struct {
	Event models.Event
}

// DeleteEvent removes the event whose id matches, cascading its attendees.
// No-op if no match.
type DeleteEvent struct {
	ID string
}

// SetSearch replaces the free-text search query.
type SetSearch struct {
	Query string
}

// SetDateFilter replaces the date filter string.
type SetDateFilter struct {
	Date string
}

// AddAttendee appends an attendee to the matching event's roster. No-op if
// the event is not found.
type AddAttendee struct {
	EventID  string
	Attendee models.Attendee
}

// UpdateAttendeeStatus replaces the status of the matching attendee within
// the matching event. No-op if either is not found.
type UpdateAttendeeStatus struct {
	EventID    string
	AttendeeID string
	Status     models.AttendeeStatus
}

// RemoveAttendee removes the matching attendee from the matching event.
// No-op if either is not found.
type RemoveAttendee struct {
	EventID    string
	AttendeeID string
}

func (ReplaceAll) isAction()           {}
func (AddEvent) isAction()             {}
func (UpdateEvent) isAction()          {}
func (DeleteEvent) isAction()          {}
func (SetSearch) isAction()            {}
func (SetDateFilter) isAction()        {}
func (AddAttendee) isAction()          {}
func (UpdateAttendeeStatus) isAction() {}
func (RemoveAttendee) isAction()       {}
