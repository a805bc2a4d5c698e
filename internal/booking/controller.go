package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/deeplink"
	"clinic-booking-backend/pkg/scheduler"
)

const (
	DefaultHandoffDelay = time.Second
	DefaultResetDelay   = 2 * time.Second
)

var errNoOpener = errors.New("no opener configured")

// Opener opens a link in a new browsing context.
type Opener interface {
	Open(link string) error
}

type OpenerFunc func(link string) error

func (f OpenerFunc) Open(link string) error { return f(link) }

// SubmitControl is the submit button: busy means disabled with a spinner.
type SubmitControl interface {
	SetBusy(busy bool)
}

type SubmitControlFunc func(busy bool)

func (f SubmitControlFunc) SetBusy(busy bool) { f(busy) }

// Timing holds the observable delays of a submit cycle.
type Timing struct {
	// HandoffDelay is the minimum time the loading state stays visible.
	HandoffDelay time.Duration
	// ResetDelay is how long after a successful handoff the form is cleared.
	ResetDelay time.Duration
}

func DefaultTiming() Timing {
	return Timing{HandoffDelay: DefaultHandoffDelay, ResetDelay: DefaultResetDelay}
}

// Handoff identifies the messaging target.
type Handoff struct {
	Host    string
	Contact string
}

// Result is the terminal report of one submit cycle.
type Result struct {
	Outcome       domain.SubmissionOutcome
	DeepLink      string
	InvalidFields []string
	Notification  domain.Notification
	Err           error
}

// Deps are the collaborators of a Controller. Form, Schedule and Opener are
// required; the rest default. None of them may call back into the Controller.
type Deps struct {
	Form      *Form
	Schedule  *Schedule
	Formatter *Formatter
	Notifier  *Notifier
	Opener    Opener
	Control   SubmitControl
	Scheduler scheduler.Scheduler
	Logger    *slog.Logger
}

// Controller runs the submit flow: validate, re-check the schedule, format,
// wait out the loading delay, open the deep link, then reset the form.
type Controller struct {
	mu        sync.Mutex
	form      *Form
	schedule  *Schedule
	formatter *Formatter
	notifier  *Notifier
	opener    Opener
	control   SubmitControl
	sched     scheduler.Scheduler
	log       *slog.Logger
	handoff   Handoff
	timing    Timing

	m         machine
	inFlight  bool
	last      *Result
	onOutcome func(Result)
}

type notice struct {
	text string
	kind domain.NotificationKind
}

func NewController(d Deps, handoff Handoff, timing Timing) *Controller {
	if d.Scheduler == nil {
		d.Scheduler = scheduler.System()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Formatter == nil {
		d.Formatter = NewFormatter("es")
	}
	if d.Notifier == nil {
		d.Notifier = NewNotifier(d.Scheduler, DefaultNotificationTTL)
	}
	if d.Control == nil {
		d.Control = SubmitControlFunc(func(bool) {})
	}
	if d.Schedule == nil {
		d.Schedule, _ = NewSchedule(d.Scheduler, DefaultScheduleRules())
	}
	if timing.HandoffDelay <= 0 {
		timing.HandoffDelay = DefaultHandoffDelay
	}
	if timing.ResetDelay <= 0 {
		timing.ResetDelay = DefaultResetDelay
	}

	c := &Controller{
		form:      d.Form,
		schedule:  d.Schedule,
		formatter: d.Formatter,
		notifier:  d.Notifier,
		opener:    d.Opener,
		control:   d.Control,
		sched:     d.Scheduler,
		log:       d.Logger,
		handoff:   handoff,
		timing:    timing,
	}
	c.m = machine{current: StateIdle, observe: func(from, to State) {
		c.log.Debug("booking state change", "from", from, "to", to)
	}}
	return c
}

// OnOutcome registers the callback receiving every terminal Result.
func (c *Controller) OnOutcome(f func(Result)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onOutcome = f
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.current
}

// InFlight reports whether a handoff is pending.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Last returns the most recent terminal Result.
func (c *Controller) Last() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return Result{}, false
	}
	return *c.last, true
}

// Submit handles a submit event. Rejections are reported synchronously
// through OnOutcome; an accepted request reports after the handoff delay.
func (c *Controller) Submit() error {
	c.mu.Lock()
	if c.inFlight || c.m.current != StateIdle {
		c.mu.Unlock()
		return domain.ErrSubmissionInProgress
	}
	c.transition(StateValidating)

	req, res, note, ok := c.validateLocked()
	if !ok {
		c.transition(StateRejected)
		c.transition(StateIdle)
		c.mu.Unlock()
		c.settle(res, note)
		return nil
	}

	c.transition(StateFormatting)
	c.inFlight = true
	c.control.SetBusy(true)

	encoded, err := c.formatter.EncodedMessage(req)
	if err != nil {
		res, note := c.failLocked(fmt.Errorf("%w: %w", domain.ErrHandoffConstructionFailed, err))
		c.mu.Unlock()
		c.settle(res, note)
		return nil
	}

	c.transition(StateAwaitingHandoff)
	c.sched.AfterFunc(c.timing.HandoffDelay, func() { c.completeHandoff(encoded) })
	c.mu.Unlock()
	return nil
}

func (c *Controller) validateLocked() (domain.AppointmentRequest, Result, *notice, bool) {
	if c.form == nil {
		res := Result{Outcome: domain.OutcomeValidationFailed, Err: fmt.Errorf("%w: no form bound", domain.ErrFieldInvalid)}
		return domain.AppointmentRequest{}, res, &notice{domain.MsgValidationFailed, domain.NotificationError}, false
	}

	invalid := c.form.ValidateAll()
	req := c.form.Request()

	scheduleInvalid, weekend := c.schedule.check(req)
	if weekend {
		res := Result{Outcome: domain.OutcomeWeekendRejected, Err: fmt.Errorf("%w: %s", domain.ErrWeekendSelected, req.Date)}
		return req, res, &notice{domain.MsgWeekendRejected, domain.NotificationError}, false
	}

	for _, field := range scheduleInvalid {
		if !contains(invalid, field) {
			c.form.MarkInvalid(field)
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		c.form.SetWasValidated(true)
		ordered := inFormOrder(invalid)
		res := Result{
			Outcome:       domain.OutcomeValidationFailed,
			InvalidFields: ordered,
			Err:           fmt.Errorf("%w: %s", domain.ErrFieldInvalid, strings.Join(ordered, ", ")),
		}
		return req, res, &notice{domain.MsgValidationFailed, domain.NotificationError}, false
	}
	return req, Result{}, nil, true
}

func (c *Controller) completeHandoff(encoded string) {
	c.mu.Lock()
	link, err := deeplink.Build(c.handoff.Host, c.handoff.Contact, encoded)
	if err == nil {
		err = c.open(link)
	}
	if err != nil {
		res, note := c.failLocked(fmt.Errorf("%w: %w", domain.ErrHandoffConstructionFailed, err))
		c.mu.Unlock()
		c.settle(res, note)
		return
	}

	c.transition(StateSuccess)
	res := Result{Outcome: domain.OutcomeSuccess, DeepLink: link}
	c.sched.AfterFunc(c.timing.ResetDelay, c.resetForm)
	c.finishLocked()
	c.mu.Unlock()
	c.settle(res, &notice{domain.MsgHandoffSuccess, domain.NotificationSuccess})
}

func (c *Controller) open(link string) (err error) {
	if c.opener == nil {
		return errNoOpener
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("opener panicked: %v", r)
		}
	}()
	return c.opener.Open(link)
}

// failLocked logs the real cause; the user only sees a generic message.
func (c *Controller) failLocked(err error) (Result, *notice) {
	c.log.Error("booking handoff failed", "error", err)
	c.transition(StateHandoffFailed)
	c.finishLocked()
	return Result{Outcome: domain.OutcomeHandoffError, Err: err}, &notice{domain.MsgHandoffFailed, domain.NotificationError}
}

func (c *Controller) finishLocked() {
	c.control.SetBusy(false)
	c.inFlight = false
	c.transition(StateIdle)
}

func (c *Controller) resetForm() {
	if c.form != nil {
		c.form.Reset()
	}
	c.log.Debug("booking form reset")
}

func (c *Controller) settle(res Result, n *notice) {
	if n != nil {
		res.Notification = c.notifier.Show(n.text, n.kind)
	}
	c.mu.Lock()
	c.last = &res
	cb := c.onOutcome
	c.mu.Unlock()
	if cb != nil {
		cb(res)
	}
}

func (c *Controller) transition(next State) {
	if err := c.m.to(next); err != nil {
		c.log.Error("booking state machine", "error", err)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func inFormOrder(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range FieldOrder {
		if contains(fields, f) {
			out = append(out, f)
		}
	}
	return out
}
