package store

import (
	"github.com/idiya2016/event-dashboard/internal/models"
)

// EventState is the canonical dashboard state: the full event collection in
// display order plus the current search and date filter criteria. It is only
// ever replaced wholesale through Transition, never edited piecemeal.
type EventState struct {
	Events      []models.Event
	SearchQuery string
	DateFilter  string
}
