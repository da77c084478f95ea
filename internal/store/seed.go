package store

import (
	"github.com/idiya2016/event-dashboard/internal/models"
)

// SampleEvents returns the fixed first-run data set. It is loaded only when
// the persisted snapshot is empty or unreadable.
func SampleEvents() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Name:        "Tech Conference 2026",
			Date:        "2026-03-15T09:00:00.000Z",
			Location:    "San Francisco, CA",
			Description: "Annual technology conference featuring the latest innovations in AI, cloud computing, and software development.",
			Image:       "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
			Attendees: []models.Attendee{
				{ID: "a1", Name: "John Doe", Email: "john@example.com", Status: models.StatusConfirmed},
				{ID: "a2", Name: "Jane Smith", Email: "jane@example.com", Status: models.StatusPending},
				{ID: "a3", Name: "Bob Wilson", Email: "bob@example.com", Status: models.StatusConfirmed},
			},
		},
		{
			ID:          "2",
			Name:        "Summer Music Festival",
			Date:        "2026-06-20T18:00:00.000Z",
			Location:    "Austin, TX",
			Description: "Three-day outdoor music festival with live performances from top artists across multiple genres.",
			Image:       "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=800&q=80",
			Attendees: []models.Attendee{
				{ID: "a4", Name: "Alice Brown", Email: "alice@example.com", Status: models.StatusConfirmed},
				{ID: "a5", Name: "Charlie Davis", Email: "charlie@example.com", Status: models.StatusDeclined},
			},
		},
		{
			ID:          "3",
			Name:        "Art Gallery Opening",
			Date:        "2026-04-05T19:00:00.000Z",
			Location:    "New York, NY",
			Description: "Exclusive preview of contemporary art exhibition featuring works from emerging local artists.",
			Image:       "https://images.unsplash.com/photo-1518998053901-5348d3961a04?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
		{
			ID:          "4",
			Name:        "Startup Pitch Night",
			Date:        "2026-03-28T18:30:00.000Z",
			Location:    "Boston, MA",
			Description: "Networking event where early-stage startups pitch their ideas to investors and industry mentors.",
			Image:       "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800&q=80",
			Attendees: []models.Attendee{
				{ID: "a6", Name: "Eva Martinez", Email: "eva@example.com", Status: models.StatusPending},
			},
		},
		{
			ID:          "5",
			Name:        "Food & Wine Expo",
			Date:        "2026-05-10T12:00:00.000Z",
			Location:    "Napa Valley, CA",
			Description: "Culinary showcase featuring renowned chefs, wine tastings, and cooking demonstrations.",
			Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
		{
			ID:          "6",
			Name:        "Marathon 2026",
			Date:        "2026-04-18T07:00:00.000Z",
			Location:    "Chicago, IL",
			Description: "Annual city marathon with full, half, and 5K race options for runners of all levels.",
			Image:       "https://images.unsplash.com/photo-1552674605-469523f9a5e2?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
		{
			ID:          "7",
			Name:        "Digital Marketing Summit",
			Date:        "2026-05-22T09:00:00.000Z",
			Location:    "Seattle, WA",
			Description: "Two-day summit covering SEO, social media strategy, content marketing, and analytics.",
			Image:       "https://images.unsplash.com/photo-1557804506-669a67965ba0?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
		{
			ID:          "8",
			Name:        "Comic Con Convention",
			Date:        "2026-07-12T10:00:00.000Z",
			Location:    "Los Angeles, CA",
			Description: "Pop culture celebration with celebrity guests, cosplay contests, and exclusive merchandise.",
			Image:       "https://images.unsplash.com/photo-1609220136736-443140cffec6?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
		{
			ID:          "9",
			Name:        "Wellness Retreat Weekend",
			Date:        "2026-06-05T15:00:00.000Z",
			Location:    "Sedona, AZ",
			Description: "Relaxing weekend retreat featuring yoga, meditation, spa treatments, and healthy cooking workshops.",
			Image:       "https://images.unsplash.com/photo-1545205597-3d9d02c29597?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
		{
			ID:          "10",
			Name:        "Gaming Tournament",
			Date:        "2026-08-01T11:00:00.000Z",
			Location:    "Las Vegas, NV",
			Description: "Competitive esports tournament with top teams competing for prizes and championship titles.",
			Image:       "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=800&q=80",
			Attendees:   []models.Attendee{},
		},
	}
}
