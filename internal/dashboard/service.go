package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/idiya2016/event-dashboard/internal/logger"
	"github.com/idiya2016/event-dashboard/internal/models"
	"github.com/idiya2016/event-dashboard/internal/notify"
	"github.com/idiya2016/event-dashboard/internal/store"
	"github.com/idiya2016/event-dashboard/internal/utils"
	"github.com/idiya2016/event-dashboard/internal/views"
)

// ErrEventNotFound is returned by FindEventByID when no event matches.
var ErrEventNotFound = errors.New("event not found")

// Snapshots is the persistence layer the service saves through.
type Snapshots interface {
	Save(events []models.Event) error
	Load() ([]models.Event, error)
}

// Service is the mutation facade over the event store: it translates intent
// operations into store transitions, generating identifiers, snapshotting the
// collection after every change and emitting a confirmation notification.
type Service struct {
	Store  *store.Store
	Snaps  Snapshots
	Bus    *notify.Bus
	Logger *logger.Logger

	// Now and NewID are swappable for tests.
	Now   func() time.Time
	NewID func() string
}

// New restores the event collection from the snapshot store and wires up the
// service. An empty store seeds the sample events; an unreadable snapshot is
// treated the same way (fail closed) after a warning.
func New(snaps Snapshots, bus *notify.Bus, log *logger.Logger) (*Service, error) {
	s := &Service{
		Snaps:  snaps,
		Bus:    bus,
		Logger: log,
		Now:    time.Now,
		NewID:  utils.NewID,
	}

	events, err := snaps.Load()
	if err != nil {
		if log != nil {
			log.Warn("STORAGE", fmt.Sprintf("Stored snapshot unreadable, starting from sample data: %v", err))
		}
		events = nil
	}
	if len(events) == 0 {
		events = store.SampleEvents()
		if err := snaps.Save(events); err != nil {
			return nil, fmt.Errorf("persist sample events: %w", err)
		}
	}

	s.Store = store.New(store.EventState{Events: events})
	return s, nil
}

// State returns the most recently committed state.
func (s *Service) State() store.EventState {
	return s.Store.State()
}

// FindEventByID returns the matching event or ErrEventNotFound. Read-only.
func (s *Service) FindEventByID(id string) (models.Event, error) {
	for _, event := range s.Store.State().Events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.Event{}, fmt.Errorf("%w: %s", ErrEventNotFound, id)
}

// FilteredEvents recomputes the search+date filtered view from the current
// state. The view engine is pure, so there is nothing to invalidate.
func (s *Service) FilteredEvents() []models.Event {
	state := s.Store.State()
	return views.FilteredEvents(state.Events, state.SearchQuery, state.DateFilter)
}

// CalendarDays returns the 42-cell grid for the month containing the given
// reference time.
func (s *Service) CalendarDays(month time.Time) []views.CalendarDay {
	return views.CalendarDays(month, s.Now(), s.Store.State().Events)
}

// Analytics recomputes the aggregate statistics from the current state.
func (s *Service) Analytics() views.Stats {
	return views.Analytics(s.Store.State().Events, s.Now())
}

// CreateEvent builds an event from the draft with a fresh id and an empty
// roster, appends it and persists.
func (s *Service) CreateEvent(draft models.EventDraft) (models.Event, error) {
	event := models.Event{
		ID:          s.NewID(),
		Name:        draft.Name,
		Date:        draft.Date,
		Location:    draft.Location,
		Description: draft.Description,
		Image:       draft.Image,
		Attendees:   []models.Attendee{},
	}

	state := s.Store.Dispatch(store.AddEvent{Event: event})
	if err := s.persist(state); err != nil {
		return models.Event{}, err
	}
	s.logEvent("CREATE", event.ID, event.Name)
	s.Bus.Publish(notify.EventCreated, "Event created successfully!")
	return event, nil
}

// EditEvent replaces the event wholesale with the draft fields under the
// same id. The attendee roster is part of the replacement and resets with
// it. No-op on the collection if the id does not exist.
func (s *Service) EditEvent(id string, draft models.EventDraft) (models.Event, error) {
	event := models.Event{
		ID:          id,
		Name:        draft.Name,
		Date:        draft.Date,
		Location:    draft.Location,
		Description: draft.Description,
		Image:       draft.Image,
		Attendees:   []models.Attendee{},
	}

	state := s.Store.Dispatch(store.UpdateEvent{Event: event})
	if err := s.persist(state); err != nil {
		return models.Event{}, err
	}
	s.logEvent("UPDATE", id, event.Name)
	s.Bus.Publish(notify.EventUpdated, "Event updated successfully!")
	return event, nil
}

// RemoveEvent deletes the event and its entire roster. No-op on the
// collection if the id does not exist.
func (s *Service) RemoveEvent(id string) error {
	state := s.Store.Dispatch(store.DeleteEvent{ID: id})
	if err := s.persist(state); err != nil {
		return err
	}
	s.logEvent("DELETE", id, "removed with its roster")
	s.Bus.Publish(notify.EventDeleted, "Event deleted successfully!")
	return nil
}

// RegisterAttendee adds an attendee to the event's roster with a fresh id.
// An empty draft status defaults to pending.
func (s *Service) RegisterAttendee(eventID string, draft models.AttendeeDraft) (models.Attendee, error) {
	status := draft.Status
	if status == "" {
		status = models.StatusPending
	}
	attendee := models.Attendee{
		ID:     s.NewID(),
		Name:   draft.Name,
		Email:  draft.Email,
		Status: status,
	}

	state := s.Store.Dispatch(store.AddAttendee{EventID: eventID, Attendee: attendee})
	if err := s.persist(state); err != nil {
		return models.Attendee{}, err
	}
	s.logAttendee("ADD", eventID, attendee.ID)
	s.Bus.Publish(notify.AttendeeAdded, "Attendee added successfully!")
	return attendee, nil
}

// SetAttendeeStatus updates the attendee's status within the event. No-op on
// the collection if either id is absent.
func (s *Service) SetAttendeeStatus(eventID, attendeeID string, status models.AttendeeStatus) error {
	state := s.Store.Dispatch(store.UpdateAttendeeStatus{
		EventID:    eventID,
		AttendeeID: attendeeID,
		Status:     status,
	})
	if err := s.persist(state); err != nil {
		return err
	}
	s.logAttendee("STATUS", eventID, attendeeID)
	s.Bus.Publish(notify.AttendeeStatusChanged, "Attendee status updated!")
	return nil
}

// UnregisterAttendee removes the attendee from the event's roster. No-op on
// the collection if either id is absent.
func (s *Service) UnregisterAttendee(eventID, attendeeID string) error {
	state := s.Store.Dispatch(store.RemoveAttendee{EventID: eventID, AttendeeID: attendeeID})
	if err := s.persist(state); err != nil {
		return err
	}
	s.logAttendee("REMOVE", eventID, attendeeID)
	s.Bus.Publish(notify.AttendeeRemoved, "Attendee removed successfully!")
	return nil
}

// SetSearchTerm replaces the search query. Filter criteria are session
// state, not persisted.
func (s *Service) SetSearchTerm(query string) {
	s.Store.Dispatch(store.SetSearch{Query: query})
}

// SetDateFilter replaces the date filter string.
func (s *Service) SetDateFilter(date string) {
	s.Store.Dispatch(store.SetDateFilter{Date: date})
}

func (s *Service) logEvent(action, eventID, message string) {
	if s.Logger != nil {
		s.Logger.LogEvent(action, eventID, message)
	}
}

func (s *Service) logAttendee(action, eventID, attendeeID string) {
	if s.Logger != nil {
		s.Logger.LogAttendee(action, eventID, attendeeID)
	}
}

// persist snapshots the committed collection. The in-memory transition has
// already applied; a storage failure is reported to the caller rather than
// rolled back.
func (s *Service) persist(state store.EventState) error {
	if err := s.Snaps.Save(state.Events); err != nil {
		if s.Logger != nil {
			s.Logger.Error("STORAGE", fmt.Sprintf("Failed to save snapshot: %v", err))
		}
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}
