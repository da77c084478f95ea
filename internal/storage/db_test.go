package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/idiya2016/event-dashboard/internal/models"
	"github.com/idiya2016/event-dashboard/internal/storage"
)

func setupTestDB(t *testing.T) (*storage.DB, *bun.DB) {
	// In-memory SQLite, same engine as production
	bunDB, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { bunDB.Close() })

	return &storage.DB{Bun: bunDB}, bunDB
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	snapDB, _ := setupTestDB(t)

	eventID := uuid.New().String()
	events := []models.Event{
		{
			ID:          eventID,
			Name:        "Tech Conference",
			Date:        "2026-03-15T09:00:00.000Z",
			Location:    "San Francisco, CA",
			Description: "Annual conference",
			Image:       "https://example.com/banner.jpg",
			Attendees: []models.Attendee{
				{ID: uuid.New().String(), Name: "John Doe", Email: "john@example.com", Status: models.StatusConfirmed},
			},
		},
	}

	err := snapDB.Save(events)
	assert.NoError(t, err)

	loaded, err := snapDB.Load()
	assert.NoError(t, err)
	assert.Equal(t, events, loaded)
}

func TestLoadMissingSlotReturnsEmpty(t *testing.T) {
	snapDB, _ := setupTestDB(t)

	loaded, err := snapDB.Load()

	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestSaveOverwritesPriorSnapshot(t *testing.T) {
	snapDB, _ := setupTestDB(t)

	first := []models.Event{{ID: "1", Name: "First", Attendees: []models.Attendee{}}}
	second := []models.Event{
		{ID: "2", Name: "Second", Attendees: []models.Attendee{}},
		{ID: "3", Name: "Third", Attendees: []models.Attendee{}},
	}

	require.NoError(t, snapDB.Save(first))
	require.NoError(t, snapDB.Save(second))

	loaded, err := snapDB.Load()
	assert.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestLoadCorruptSnapshotFailsClosed(t *testing.T) {
	snapDB, bunDB := setupTestDB(t)

	// Write a row the decoder cannot parse
	snap := storage.Snapshot{
		Slot:      storage.DefaultSlot,
		Data:      []byte("{definitely not an event array"),
		UpdatedAt: time.Now(),
	}
	_, err := bunDB.NewInsert().Model(&snap).Exec(context.Background())
	require.NoError(t, err)

	loaded, err := snapDB.Load()

	assert.Error(t, err)
	assert.Nil(t, loaded)
}

func TestLoadNormalizesMissingAttendees(t *testing.T) {
	snapDB, bunDB := setupTestDB(t)

	// Older snapshots can omit the attendees field entirely
	snap := storage.Snapshot{
		Slot:      storage.DefaultSlot,
		Data:      []byte(`[{"id":"e1","name":"Expo","date":"2026-05-10T12:00:00.000Z","location":"Napa Valley, CA","description":"Culinary showcase"}]`),
		UpdatedAt: time.Now(),
	}
	_, err := bunDB.NewInsert().Model(&snap).Exec(context.Background())
	require.NoError(t, err)

	loaded, err := snapDB.Load()

	assert.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.NotNil(t, loaded[0].Attendees)
	assert.Empty(t, loaded[0].Attendees)
}

func TestCustomSlotIsIsolated(t *testing.T) {
	_, bunDB := setupTestDB(t)

	defaultSlot := &storage.DB{Bun: bunDB}
	archive := &storage.DB{Bun: bunDB, Slot: "events_archive"}

	require.NoError(t, defaultSlot.Save([]models.Event{{ID: "live", Attendees: []models.Attendee{}}}))
	require.NoError(t, archive.Save([]models.Event{{ID: "old", Attendees: []models.Attendee{}}}))

	loaded, err := defaultSlot.Load()
	assert.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "live", loaded[0].ID)
}
