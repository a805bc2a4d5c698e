package booking

import "sync"

type EventType string

const (
	EventInput    EventType = "input"
	EventChange   EventType = "change"
	EventSubmit   EventType = "submit"
	EventClick    EventType = "click"
	EventKeypress EventType = "keypress"
)

// Event is a user interaction on the booking page.
type Event struct {
	Type   EventType
	Target string // field identifier or element id
	Value  string
	Key    string
}

// Response tells the page what to do after handlers ran.
type Response struct {
	PreventDefault bool
	Focus          string
	Err            error
}

type Handler func(Event) Response

// Dispatcher is the event-to-handler registration table.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]Handler)}
}

// On registers h for events of type t. Handlers run in registration order.
func (d *Dispatcher) On(t EventType, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = append(d.handlers[t], h)
}

// Dispatch runs every handler registered for e.Type and merges their
// responses: any PreventDefault wins, the last Focus wins, the first Err wins.
func (d *Dispatcher) Dispatch(e Event) Response {
	d.mu.RLock()
	hs := append([]Handler(nil), d.handlers[e.Type]...)
	d.mu.RUnlock()

	var out Response
	for _, h := range hs {
		r := h(e)
		out.PreventDefault = out.PreventDefault || r.PreventDefault
		if r.Focus != "" {
			out.Focus = r.Focus
		}
		if out.Err == nil {
			out.Err = r.Err
		}
	}
	return out
}
