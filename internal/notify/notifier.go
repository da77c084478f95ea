package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the semantic success event a mutation produces.
type Kind string

const (
	EventCreated          Kind = "event.created"
	EventUpdated          Kind = "event.updated"
	EventDeleted          Kind = "event.deleted"
	AttendeeAdded         Kind = "attendee.added"
	AttendeeStatusChanged Kind = "attendee.status_changed"
	AttendeeRemoved       Kind = "attendee.removed"
)

// Notification is one user-facing confirmation. Display lifecycle (timing,
// stacking, dismissal) belongs to the subscriber, not the core.
type Notification struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Bus fans notifications out to subscriber channels.
type Bus struct {
	mu      sync.RWMutex
	clients []chan Notification
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a client channel. The subscription is removed and the
// channel closed when ctx is done.
func (b *Bus) Subscribe(ctx context.Context) <-chan Notification {
	clientChan := make(chan Notification, 10)

	b.mu.Lock()
	b.clients = append(b.clients, clientChan)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(clientChan)
	}()

	return clientChan
}

// Publish broadcasts a notification to all subscribers. Sends are
// non-blocking: a subscriber with a full buffer misses the notification
// rather than stalling the mutation path.
func (b *Bus) Publish(kind Kind, message string) {
	notification := Notification{
		ID:      uuid.New().String(),
		Kind:    kind,
		Message: message,
		At:      time.Now(),
	}

	b.mu.RLock()
	clients := make([]chan Notification, len(b.clients))
	copy(clients, b.clients)
	b.mu.RUnlock()

	for _, clientChan := range clients {
		select {
		case clientChan <- notification:
		default:
		}
	}
}

func (b *Bus) remove(clientChan chan Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, ch := range b.clients {
		if ch == clientChan {
			b.clients = append(b.clients[:i], b.clients[i+1:]...)
			close(clientChan)
			break
		}
	}
}
