package booking

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/scheduler"

	"github.com/stretchr/testify/require"
)

// Monday 19 October 2026, 10:00 UTC
var testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

const (
	nextMonday = "2026-10-26"
	saturday   = "2026-10-24"
	sunday     = "2026-10-25"
)

var testHandoff = Handoff{Host: "wa.me", Contact: "+52 238 122 8849"}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() domain.AppointmentRequest {
	return domain.AppointmentRequest{
		Name:   "Juan Perez",
		Phone:  "2381234567",
		Reason: "Dolor de cabeza persistente",
		Date:   nextMonday,
		Time:   "09:30",
	}
}

func testSchedule(t *testing.T, clock scheduler.Clock) *Schedule {
	t.Helper()
	rules := DefaultScheduleRules()
	rules.Location = time.UTC
	s, err := NewSchedule(clock, rules)
	require.NoError(t, err)
	return s
}

type recordingOpener struct {
	mu    sync.Mutex
	links []string
	err   error
}

func (o *recordingOpener) Open(link string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.links = append(o.links, link)
	return nil
}

func (o *recordingOpener) Links() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.links...)
}

type recordingControl struct {
	mu    sync.Mutex
	busy  bool
	calls []bool
}

func (c *recordingControl) SetBusy(busy bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = busy
	c.calls = append(c.calls, busy)
}

func (c *recordingControl) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

type countingPicker struct{ cleared int }

func (p *countingPicker) Clear() { p.cleared++ }

var errPopupBlocked = errors.New("popup blocked")
