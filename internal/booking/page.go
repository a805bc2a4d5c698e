package booking

import (
	"log/slog"

	"clinic-booking-backend/pkg/deeplink"
)

// ContactButton is the id of the floating messaging button.
const ContactButton = "whatsapp-float"

// Page binds the form, the controller and the contact button to page events.
type Page struct {
	Form       *Form
	Controller *Controller
	Notifier   *Notifier

	dispatcher *Dispatcher
	opener     Opener
	handoff    Handoff
	log        *slog.Logger
}

// NewPage wires a controller over d and registers the page's handlers.
func NewPage(d Deps, handoff Handoff, timing Timing) *Page {
	if d.Form == nil {
		d.Form = NewForm()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	ctrl := NewController(d, handoff, timing)
	p := &Page{
		Form:       d.Form,
		Controller: ctrl,
		Notifier:   ctrl.notifier,
		dispatcher: NewDispatcher(),
		opener:     d.Opener,
		handoff:    handoff,
		log:        d.Logger,
	}

	p.dispatcher.On(EventInput, p.onFieldEdit)
	p.dispatcher.On(EventChange, p.onFieldEdit)
	p.dispatcher.On(EventSubmit, p.onSubmit)
	p.dispatcher.On(EventClick, p.onClick)
	p.dispatcher.On(EventKeypress, p.onKeypress)
	return p
}

// Dispatch routes a page event through the registration table.
func (p *Page) Dispatch(e Event) Response {
	return p.dispatcher.Dispatch(e)
}

func (p *Page) onFieldEdit(e Event) Response {
	if !IsField(e.Target) {
		return Response{}
	}
	p.Form.Set(e.Target, e.Value)
	p.Form.Validate(e.Target)
	return Response{}
}

func (p *Page) onSubmit(Event) Response {
	return Response{PreventDefault: true, Err: p.Controller.Submit()}
}

func (p *Page) onClick(e Event) Response {
	if e.Target != ContactButton {
		return Response{}
	}
	link, err := deeplink.ContactLink(p.handoff.Host, p.handoff.Contact)
	if err == nil {
		if p.opener == nil {
			err = errNoOpener
		} else {
			err = p.opener.Open(link)
		}
	}
	if err != nil {
		p.log.Error("contact button handoff failed", "error", err)
	}
	return Response{PreventDefault: true, Err: err}
}

// onKeypress turns Enter into "next field" everywhere except the multi-line field.
func (p *Page) onKeypress(e Event) Response {
	if e.Key != "Enter" || e.Target == MultilineField {
		return Response{}
	}
	next, _ := NextField(e.Target)
	return Response{PreventDefault: true, Focus: next}
}
