package views

import (
	"strings"

	"github.com/idiya2016/event-dashboard/internal/models"
)

// FilteredEvents returns the events whose name or location contains query
// (case-insensitive substring) and, when dateFilter is non-empty, whose raw
// date string equals it exactly. Source order is preserved and the input is
// never modified. An empty query matches everything.
//
// The date comparison is deliberately a strict string match against the
// stored date, not a calendar-day match: a filter of "2026-03-15" will not
// match an event dated "2026-03-15T09:00:00.000Z".
func FilteredEvents(events []models.Event, query, dateFilter string) []models.Event {
	q := strings.ToLower(query)
	matched := make([]models.Event, 0, len(events))
	for _, event := range events {
		matchesSearch := strings.Contains(strings.ToLower(event.Name), q) ||
			strings.Contains(strings.ToLower(event.Location), q)
		matchesDate := dateFilter == "" || event.Date == dateFilter
		if matchesSearch && matchesDate {
			matched = append(matched, event)
		}
	}
	return matched
}
