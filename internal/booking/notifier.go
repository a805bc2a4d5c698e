package booking

import (
	"sync"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/scheduler"
)

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 5 * time.Second

// Notifier owns the single notification slot of the page. A new notification
// replaces the visible one at once; nothing is queued.
type Notifier struct {
	mu       sync.Mutex
	sched    scheduler.Scheduler
	ttl      time.Duration
	seq      uint64
	current  *domain.Notification
	timer    scheduler.Timer
	onChange func(*domain.Notification)
}

func NewNotifier(sched scheduler.Scheduler, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{sched: sched, ttl: ttl}
}

// OnChange registers a renderer called with the new slot content, nil when
// the slot empties.
func (n *Notifier) OnChange(f func(*domain.Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = f
}

// Show replaces the visible notification and schedules its dismissal.
func (n *Notifier) Show(text string, kind domain.NotificationKind) domain.Notification {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	id := n.seq
	note := domain.Notification{ID: id, Text: text, Kind: kind, ShownAt: n.sched.Now()}
	n.current = &note
	n.timer = n.sched.AfterFunc(n.ttl, func() { n.dismiss(id) })
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		shown := note
		onChange(&shown)
	}
	return note
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return domain.Notification{}, false
	}
	return *n.current, true
}

func (n *Notifier) dismiss(id uint64) {
	n.mu.Lock()
	// a newer notification owns the slot
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}
