package models

// EventDraft carries the user-supplied fields for creating or editing an
// event. Field validation happens in the presentation layer before a draft
// reaches the core.
type EventDraft struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// AttendeeDraft carries the user-supplied fields for registering an attendee.
// An empty Status means pending.
type AttendeeDraft struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Status AttendeeStatus `json:"status,omitempty"`
}
