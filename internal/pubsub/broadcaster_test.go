package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/campusbase/registrar/internal/model"
)

func testEnrollment(id string) *model.Enrollment {
	return &model.Enrollment{
		ID:         id,
		StudentID:  "s",
		CourseID:   "c",
		Status:     model.EnrollmentStatusActive,
		EnrolledAt: time.Now().UTC(),
	}
}

func TestSubscribeReceivesPublishedEvent(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Publish(testEnrollment("e1"))

	select {
	case got := <-ch:
		if got.ID != "e1" {
			t.Errorf("received ID = %q, want %q", got.ID, "e1")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)
	ch3 := b.Subscribe(ctx)

	b.Publish(testEnrollment("e1"))

	for i, ch := range []<-chan *model.Enrollment{ch1, ch2, ch3} {
		select {
		case got := <-ch:
			if got.ID != "e1" {
				t.Errorf("subscriber %d received ID = %q, want %q", i, got.ID, "e1")
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d timed out", i)
		}
	}
}

func TestExactlyOneEventPerPublish(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Publish(testEnrollment("e1"))
	b.Publish(testEnrollment("e2"))

	if got := <-ch; got.ID != "e1" {
		t.Errorf("first event ID = %q, want %q", got.ID, "e1")
	}
	if got := <-ch; got.ID != "e2" {
		t.Errorf("second event ID = %q, want %q", got.ID, "e2")
	}

	select {
	case got := <-ch:
		t.Errorf("unexpected extra event %q", got.ID)
	default:
	}
}

func TestCancelUnsubscribes(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())

	ch := b.Subscribe(ctx)
	if got := b.SubscriberCount(); got != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", got)
	}

	cancel()

	// Unsubscription happens on a goroutine watching ctx.Done; the channel
	// close is the observable signal that it completed.
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel, got event")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	if got := b.SubscriberCount(); got != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", got)
	}

	// Publishing after disconnect must not panic or deliver
	b.Publish(testEnrollment("late"))
}

func TestSlowSubscriberIsSkippedNotBlocking(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b.Subscribe(ctx) // never drained

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			b.Publish(testEnrollment("e"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
