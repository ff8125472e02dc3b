// Package pubsub provides the broadcast channel feeding the studentEnrolled
// subscription: an explicit registry of subscriber channels with fan-out on
// publish. There is no buffering beyond each subscriber's own channel and no
// replay of missed events.
package pubsub

import (
	"context"
	"sync"

	"github.com/campusbase/registrar/internal/model"
)

// subscriberBuffer absorbs short bursts so a slow websocket doesn't stall
// publishers. A subscriber that falls further behind misses events.
const subscriberBuffer = 16

type subscriber struct {
	id int
	ch chan *model.Enrollment
}

// Broadcaster fans enrollment events out to all active subscribers.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

// New creates a Broadcaster with no subscribers.
func New() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers a new subscriber and returns its event channel.
// The subscription is removed and the channel closed when ctx is canceled,
// which is how the GraphQL transport signals a client disconnect.
func (b *Broadcaster) Subscribe(ctx context.Context) <-chan *model.Enrollment {
	b.mu.Lock()
	sub := subscriber{id: b.nextID, ch: make(chan *model.Enrollment, subscriberBuffer)}
	b.nextID++
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(sub.id)
	}()

	return sub.ch
}

// Publish hands the event to all currently-registered subscribers in
// registration order and returns immediately. Delivery is best-effort: a
// subscriber whose buffer is full is skipped.
func (b *Broadcaster) Publish(e *model.Enrollment) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		select {
		case sub.ch <- e:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}

func (b *Broadcaster) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(sub.ch)
			return
		}
	}
}
