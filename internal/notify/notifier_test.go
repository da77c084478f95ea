package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idiya2016/event-dashboard/internal/notify"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := notify.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := bus.Subscribe(ctx)
	bus.Publish(notify.EventCreated, "Event created successfully!")

	select {
	case n := <-ch:
		assert.Equal(t, notify.EventCreated, n.Kind)
		assert.Equal(t, "Event created successfully!", n.Message)
		assert.NotEmpty(t, n.ID)
		assert.False(t, n.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	bus := notify.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := bus.Subscribe(ctx)
	second := bus.Subscribe(ctx)

	bus.Publish(notify.AttendeeAdded, "Attendee added successfully!")

	for _, ch := range []<-chan notify.Notification{first, second} {
		select {
		case n := <-ch:
			assert.Equal(t, notify.AttendeeAdded, n.Kind)
		case <-time.After(time.Second):
			t.Fatal("notification not delivered to all subscribers")
		}
	}
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := notify.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Never drained: fills its buffer and then drops
	_ = bus.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(notify.EventUpdated, "Event updated successfully!")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestCancelClosesSubscription(t *testing.T) {
	bus := notify.NewBus()
	ctx, cancel := context.WithCancel(context.Background())

	ch := bus.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-ch:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "channel not closed after cancel")
}
