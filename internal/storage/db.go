package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"github.com/idiya2016/event-dashboard/internal/models"
)

// DefaultSlot is the snapshot slot the dashboard writes its event collection
// to.
const DefaultSlot = "events"

// Snapshot is one named slot holding a JSON-encoded event array. The whole
// collection is written as a single value; there is no per-event row.
type Snapshot struct {
	bun.BaseModel `bun:"table:snapshots"`

	Slot      string    `bun:"slot,pk"`
	Data      []byte    `bun:"data,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type DB struct {
	Bun  *bun.DB
	Slot string
}

// Open opens (creating if needed) the SQLite database at path and ensures
// the snapshot table exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().
		Model((*Snapshot)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		bunDB.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}

	return bunDB, nil
}

// Save serializes the full event collection into the slot, overwriting any
// prior contents.
func (d *DB) Save(events []models.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	snap := Snapshot{
		Slot:      d.slot(),
		Data:      data,
		UpdatedAt: time.Now(),
	}
	_, err = d.Bun.NewInsert().
		Model(&snap).
		On("CONFLICT (slot) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(context.Background())
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", d.slot(), err)
	}
	return nil
}

// Load reads the slot and decodes the event collection. A missing slot is
// not an error: it returns an empty slice and the caller decides whether to
// seed defaults. A present but unparseable payload is an error, so the
// caller can fail closed instead of crashing on corrupt data.
func (d *DB) Load() ([]models.Event, error) {
	var snap Snapshot
	err := d.Bun.NewSelect().
		Model(&snap).
		Where("slot = ?", d.slot()).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Event{}, nil
		}
		return nil, fmt.Errorf("read snapshot %q: %w", d.slot(), err)
	}

	var events []models.Event
	if err := json.Unmarshal(snap.Data, &events); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", d.slot(), err)
	}
	for i := range events {
		events[i].Normalize()
	}
	return events, nil
}

func (d *DB) slot() string {
	if d.Slot == "" {
		return DefaultSlot
	}
	return d.Slot
}
