package views

import (
	"sort"
	"time"

	"github.com/idiya2016/event-dashboard/internal/models"
)

// monthSeriesLen is the number of buckets in the events-by-month series: the
// current month and the five preceding ones.
const monthSeriesLen = 6

// topLocations caps the popular-locations ranking.
const topLocations = 5

// MonthCount is one bucket of the events-by-month series.
type MonthCount struct {
	Month  string `json:"month"`
	Events int    `json:"events"`
}

// LocationCount ranks a location by how many events it hosts.
type LocationCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatusSlice is one category of the attendee-status breakdown, with the
// display color the dashboard charts use for it.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// UpcomingEvent annotates an event inside the 7-day window with its roster
// counts.
type UpcomingEvent struct {
	models.Event
	AttendeeCount  int `json:"attendeeCount"`
	ConfirmedCount int `json:"confirmedCount"`
}

// Stats is the full analytics aggregate over an event collection.
type Stats struct {
	TotalEvents        int
	TotalAttendees     int
	ConfirmedAttendees int
	PendingAttendees   int
	DeclinedAttendees  int
	EventsByMonth      []MonthCount
	PopularLocations   []LocationCount
	AttendeeSummary    []StatusSlice
	Upcoming           []UpcomingEvent
}

// Analytics computes the aggregate statistics for the dashboard relative to
// the given reference time. Pure: the input slice is never modified.
func Analytics(events []models.Event, now time.Time) Stats {
	stats := Stats{TotalEvents: len(events)}

	for _, event := range events {
		for _, attendee := range event.Attendees {
			stats.TotalAttendees++
			switch attendee.Status {
			case models.StatusConfirmed:
				stats.ConfirmedAttendees++
			case models.StatusPending:
				stats.PendingAttendees++
			case models.StatusDeclined:
				stats.DeclinedAttendees++
			}
		}
	}

	stats.EventsByMonth = eventsByMonth(events, now)
	stats.PopularLocations = popularLocations(events)
	stats.AttendeeSummary = []StatusSlice{
		{Name: "Confirmed", Value: stats.ConfirmedAttendees, Color: "#10b981"},
		{Name: "Pending", Value: stats.PendingAttendees, Color: "#f59e0b"},
		{Name: "Declined", Value: stats.DeclinedAttendees, Color: "#ef4444"},
	}
	stats.Upcoming = upcomingEvents(events, now)

	return stats
}

// eventsByMonth bucket events into six calendar months ending at now's
// month, zero-filled and chronologically ordered.
func eventsByMonth(events []models.Event, now time.Time) []MonthCount {
	loc := now.Location()
	bucketStart := time.Date(now.Year(), now.Month()-monthSeriesLen+1, 1, 0, 0, 0, 0, loc)

	series := make([]MonthCount, monthSeriesLen)
	for i := range series {
		series[i].Month = bucketStart.AddDate(0, i, 0).Format("Jan 06")
	}

	for _, event := range events {
		t, err := time.Parse(time.RFC3339, event.Date)
		if err != nil {
			continue
		}
		local := t.In(loc)
		idx := (local.Year()-bucketStart.Year())*12 + int(local.Month()) - int(bucketStart.Month())
		if idx >= 0 && idx < monthSeriesLen {
			series[idx].Events++
		}
	}
	return series
}

// popularLocations returns the top locations by event count, descending,
// ties broken by the order locations first appear in the collection.
func popularLocations(events []models.Event) []LocationCount {
	counts := make(map[string]int)
	order := make([]string, 0, len(events))
	for _, event := range events {
		if _, seen := counts[event.Location]; !seen {
			order = append(order, event.Location)
		}
		counts[event.Location]++
	}

	ranked := make([]LocationCount, 0, len(order))
	for _, location := range order {
		ranked = append(ranked, LocationCount{Name: location, Value: counts[location]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > topLocations {
		ranked = ranked[:topLocations]
	}
	return ranked
}

// upcomingEvents returns the events inside the forward-looking 7-day window
// from now, ascending by date, annotated with roster counts.
func upcomingEvents(events []models.Event, now time.Time) []UpcomingEvent {
	windowEnd := now.Add(7 * 24 * time.Hour)

	type dated struct {
		event models.Event
		at    time.Time
	}
	inWindow := make([]dated, 0)
	for _, event := range events {
		t, err := time.Parse(time.RFC3339, event.Date)
		if err != nil {
			continue
		}
		if t.Before(now) || t.After(windowEnd) {
			continue
		}
		inWindow = append(inWindow, dated{event: event, at: t})
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].at.Before(inWindow[j].at)
	})

	upcoming := make([]UpcomingEvent, 0, len(inWindow))
	for _, d := range inWindow {
		entry := UpcomingEvent{Event: d.event, AttendeeCount: len(d.event.Attendees)}
		for _, attendee := range d.event.Attendees {
			if attendee.Status == models.StatusConfirmed {
				entry.ConfirmedCount++
			}
		}
		upcoming = append(upcoming, entry)
	}
	return upcoming
}
