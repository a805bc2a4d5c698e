package booking

import (
	"errors"
	"fmt"
)

// State of the submission controller.
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StateRejected        State = "rejected"
	StateFormatting      State = "formatting"
	StateAwaitingHandoff State = "awaiting_handoff"
	StateSuccess         State = "success"
	StateHandoffFailed   State = "handoff_failed"
)

// transitions lists the legal successors of every state.
var transitions = map[State][]State{
	StateIdle:            {StateValidating},
	StateValidating:      {StateRejected, StateFormatting},
	StateRejected:        {StateIdle},
	StateFormatting:      {StateAwaitingHandoff, StateHandoffFailed},
	StateAwaitingHandoff: {StateSuccess, StateHandoffFailed},
	StateSuccess:         {StateIdle},
	StateHandoffFailed:   {StateIdle},
}

var ErrInvalidTransition = errors.New("invalid state transition")

// TransitionError reports a transition missing from the table.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no transition from state '%s' to '%s'", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// CanTransition reports whether the table allows from -> to.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// machine is not safe for concurrent use; the controller serializes access.
type machine struct {
	current State
	observe func(from, to State)
}

func (m *machine) to(next State) error {
	if !CanTransition(m.current, next) {
		return &TransitionError{From: m.current, To: next}
	}
	prev := m.current
	m.current = next
	if m.observe != nil {
		m.observe(prev, next)
	}
	return nil
}
