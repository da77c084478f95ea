package store

import (
	"github.com/idiya2016/event-dashboard/internal/models"
)

// Transition applies an action to a state and returns the resulting state.
// It is a pure function: no side effects, and the input state (including its
// event and attendee slices) is never modified. Every case either produces a
// complete new state or returns the input unchanged.
func Transition(state EventState, action Action) EventState {
	switch a := action.(type) {
	case ReplaceAll:
		state.Events = a.Events
		return state

	case AddEvent:
		events := make([]models.Event, 0, len(state.Events)+1)
		events = append(events, state.Events...)
		events = append(events, a.Event)
		state.Events = events
		return state

	case UpdateEvent:
		events := make([]models.Event, len(state.Events))
		for i, event := range state.Events {
			if event.ID == a.Event.ID {
				events[i] = a.Event
			} else {
				events[i] = event
			}
		}
		state.Events = events
		return state

	case DeleteEvent:
		events := make([]models.Event, 0, len(state.Events))
		for _, event := range state.Events {
			if event.ID != a.ID {
				events = append(events, event)
			}
		}
		state.Events = events
		return state

	case SetSearch:
		state.SearchQuery = a.Query
		return state

	case SetDateFilter:
		state.DateFilter = a.Date
		return state

	case AddAttendee:
		events := make([]models.Event, len(state.Events))
		for i, event := range state.Events {
			if event.ID == a.EventID {
				updated := event.Clone()
				updated.Attendees = append(updated.Attendees, a.Attendee)
				events[i] = updated
			} else {
				events[i] = event
			}
		}
		state.Events = events
		return state

	case UpdateAttendeeStatus:
		events := make([]models.Event, len(state.Events))
		for i, event := range state.Events {
			if event.ID == a.EventID {
				updated := event.Clone()
				for j, attendee := range updated.Attendees {
					if attendee.ID == a.AttendeeID {
						updated.Attendees[j].Status = a.Status
					}
				}
				events[i] = updated
			} else {
				events[i] = event
			}
		}
		state.Events = events
		return state

	case RemoveAttendee:
		events := make([]models.Event, len(state.Events))
		for i, event := range state.Events {
			if event.ID == a.EventID {
				updated := event
				attendees := make([]models.Attendee, 0, len(event.Attendees))
				for _, attendee := range event.Attendees {
					if attendee.ID != a.AttendeeID {
						attendees = append(attendees, attendee)
					}
				}
				updated.Attendees = attendees
				events[i] = updated
			} else {
				events[i] = event
			}
		}
		state.Events = events
		return state
	}

	// Unreachable: Action is sealed to the cases above.
	return state
}
