package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idiya2016/event-dashboard/internal/models"
	"github.com/idiya2016/event-dashboard/internal/views"
)

func filterFixture() []models.Event {
	return []models.Event{
		{ID: "1", Name: "Tech Conference", Date: "2026-03-15T09:00:00.000Z", Location: "San Francisco, CA"},
		{ID: "2", Name: "Music Festival", Date: "2026-06-20T18:00:00.000Z", Location: "Austin, TX"},
		{ID: "3", Name: "Art Opening", Date: "2026-03-15T09:00:00.000Z", Location: "New York, NY"},
	}
}

func TestEmptyCriteriaReturnsEverything(t *testing.T) {
	events := filterFixture()

	filtered := views.FilteredEvents(events, "", "")

	assert.Equal(t, events, filtered)
}

func TestSearchMatchesNameOrLocationCaseInsensitively(t *testing.T) {
	events := filterFixture()

	byName := views.FilteredEvents(events, "TECH", "")
	assert.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byLocation := views.FilteredEvents(events, "austin", "")
	assert.Len(t, byLocation, 1)
	assert.Equal(t, "2", byLocation[0].ID)

	none := views.FilteredEvents(events, "berlin", "")
	assert.Empty(t, none)
}

func TestFilteringIsIdempotent(t *testing.T) {
	events := filterFixture()

	once := views.FilteredEvents(events, "o", "2026-03-15T09:00:00.000Z")
	twice := views.FilteredEvents(once, "o", "2026-03-15T09:00:00.000Z")

	assert.Equal(t, once, twice)
}

func TestDateFilterIsStrictStringEquality(t *testing.T) {
	events := filterFixture()

	// The full stored string matches both March events.
	exact := views.FilteredEvents(events, "", "2026-03-15T09:00:00.000Z")
	assert.Len(t, exact, 2)

	// A calendar-day value does NOT match stored dates carrying a
	// time-of-day component. The comparison is the raw string, not the day.
	dayOnly := views.FilteredEvents(events, "", "2026-03-15")
	assert.Empty(t, dayOnly)
}

func TestSearchAndDateCombine(t *testing.T) {
	events := filterFixture()

	filtered := views.FilteredEvents(events, "art", "2026-03-15T09:00:00.000Z")

	assert.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	events := filterFixture()

	filtered := views.FilteredEvents(events, "", "2026-03-15T09:00:00.000Z")

	assert.Equal(t, []string{"1", "3"}, []string{filtered[0].ID, filtered[1].ID})
}
