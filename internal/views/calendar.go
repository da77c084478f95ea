package views

import (
	"time"

	"github.com/idiya2016/event-dashboard/internal/models"
)

// GridCells is the fixed size of the calendar grid: 6 full weeks, so the
// layout is uniform regardless of month length or starting weekday.
const GridCells = 42

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Events  []models.Event
}

// CalendarDays buckets events into a 42-cell grid for the month containing
// the reference time. The grid starts on the Sunday on or before the first
// of the month. Events land in the cell matching their calendar day
// (time-of-day ignored, compared in the reference month's location); events
// with unparseable dates land nowhere.
func CalendarDays(month time.Time, now time.Time, events []models.Event) []CalendarDay {
	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	byDay := make(map[time.Time][]models.Event)
	for _, event := range events {
		t, err := time.Parse(time.RFC3339, event.Date)
		if err != nil {
			continue
		}
		local := t.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		byDay[day] = append(byDay[day], event)
	}

	days := make([]CalendarDay, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:    date,
			InMonth: date.Month() == first.Month() && date.Year() == first.Year(),
			IsToday: date.Equal(today),
			Events:  byDay[date],
		})
	}
	return days
}
