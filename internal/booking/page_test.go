package booking

import (
	"net/url"
	"testing"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/deeplink"
	"clinic-booking-backend/pkg/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage(t *testing.T) (*Page, *scheduler.Fake, *recordingOpener) {
	t.Helper()
	sched := scheduler.NewFake(testNow)
	opener := &recordingOpener{}
	p := NewPage(Deps{
		Schedule:  testSchedule(t, sched),
		Opener:    opener,
		Scheduler: sched,
		Logger:    quietLogger(),
	}, testHandoff, DefaultTiming())
	return p, sched, opener
}

func TestPageInputUpdatesMarkers(t *testing.T) {
	p, _, _ := newTestPage(t)

	p.Dispatch(Event{Type: EventInput, Target: "name", Value: "Al"})
	assert.Equal(t, domain.FieldInvalid, p.Form.Marker("name"))

	p.Dispatch(Event{Type: EventInput, Target: "name", Value: "Ana"})
	assert.Equal(t, domain.FieldValid, p.Form.Marker("name"))

	p.Dispatch(Event{Type: EventChange, Target: "date", Value: nextMonday})
	assert.Equal(t, domain.FieldValid, p.Form.Marker("date"))

	// unknown targets are ignored
	p.Dispatch(Event{Type: EventInput, Target: "newsletter", Value: "on"})
	assert.Equal(t, "", p.Form.Value("newsletter"))
}

func TestPageEndToEnd(t *testing.T) {
	p, sched, opener := newTestPage(t)

	for field, value := range map[string]string{
		"name":   "Juan Perez",
		"phone":  "2381234567",
		"reason": "Dolor de cabeza persistente",
		"date":   nextMonday,
		"time":   "09:30",
	} {
		p.Dispatch(Event{Type: EventInput, Target: field, Value: value})
	}

	resp := p.Dispatch(Event{Type: EventSubmit})
	assert.True(t, resp.PreventDefault)
	require.NoError(t, resp.Err)

	resp = p.Dispatch(Event{Type: EventSubmit})
	assert.ErrorIs(t, resp.Err, domain.ErrSubmissionInProgress)

	sched.Advance(time.Second)
	require.Len(t, opener.Links(), 1)
	res, ok := p.Controller.Last()
	require.True(t, ok)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)

	sched.Advance(2 * time.Second)
	assert.Equal(t, domain.AppointmentRequest{}, p.Form.Request())
}

func TestPageContactButton(t *testing.T) {
	p, _, opener := newTestPage(t)

	resp := p.Dispatch(Event{Type: EventClick, Target: ContactButton})
	assert.True(t, resp.PreventDefault)
	require.NoError(t, resp.Err)
	require.Len(t, opener.Links(), 1)

	u, err := url.Parse(opener.Links()[0])
	require.NoError(t, err)
	assert.Equal(t, deeplink.ContactGreeting, u.Query().Get("text"))

	resp = p.Dispatch(Event{Type: EventClick, Target: "somewhere-else"})
	assert.False(t, resp.PreventDefault)
	assert.Len(t, opener.Links(), 1)
}

func TestPageEnterAdvancesFocus(t *testing.T) {
	p, _, _ := newTestPage(t)

	resp := p.Dispatch(Event{Type: EventKeypress, Target: "name", Key: "Enter"})
	assert.True(t, resp.PreventDefault)
	assert.Equal(t, "phone", resp.Focus)

	resp = p.Dispatch(Event{Type: EventKeypress, Target: "reason", Key: "Enter"})
	assert.False(t, resp.PreventDefault)
	assert.Empty(t, resp.Focus)

	resp = p.Dispatch(Event{Type: EventKeypress, Target: "name", Key: "a"})
	assert.False(t, resp.PreventDefault)
}

func TestDispatcherMergesResponses(t *testing.T) {
	d := NewDispatcher()
	d.On(EventClick, func(Event) Response { return Response{Focus: "a"} })
	d.On(EventClick, func(Event) Response { return Response{PreventDefault: true, Focus: "b", Err: errPopupBlocked} })
	d.On(EventClick, func(Event) Response { return Response{} })

	resp := d.Dispatch(Event{Type: EventClick})
	assert.True(t, resp.PreventDefault)
	assert.Equal(t, "b", resp.Focus)
	assert.ErrorIs(t, resp.Err, errPopupBlocked)

	assert.Equal(t, Response{}, d.Dispatch(Event{Type: EventSubmit}))
}
