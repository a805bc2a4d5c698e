package scheduler_test

import (
	"testing"
	"time"

	"clinic-booking-backend/pkg/scheduler"

	"github.com/stretchr/testify/assert"
)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	s := scheduler.NewFake(start)

	var order []string
	s.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	s.AfterFunc(1*time.Second, func() { order = append(order, "a") })

	s.Advance(999 * time.Millisecond)
	assert.Empty(t, order)

	s.Advance(1 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, start.Add(2*time.Second), s.Now())
}

func TestFakeStop(t *testing.T) {
	s := scheduler.NewFake(time.Now())
	fired := false
	timer := s.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	s.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestFakeNestedScheduling(t *testing.T) {
	s := scheduler.NewFake(time.Now())
	var fired []time.Duration
	start := s.Now()
	s.AfterFunc(time.Second, func() {
		fired = append(fired, s.Now().Sub(start))
		s.AfterFunc(2*time.Second, func() {
			fired = append(fired, s.Now().Sub(start))
		})
	})

	s.Advance(3 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 3 * time.Second}, fired)
}

func TestSystemAfterFunc(t *testing.T) {
	s := scheduler.System()
	done := make(chan struct{})
	s.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
}
