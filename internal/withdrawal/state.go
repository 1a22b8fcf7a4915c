package withdrawal

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned by Next when an event does not apply to a state.
var ErrIllegalTransition = errors.New("illegal withdrawal state transition")

// State is the position of one submission attempt.
type State string

const (
	StateIdle                 State = "idle"
	StateValidating           State = "validating"
	StateRejected             State = "rejected"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateConfirmed            State = "confirmed"
	StateCancelled            State = "cancelled"
	StateSubmitted            State = "submitted"
)

// Terminal reports whether the attempt is over.
func (s State) Terminal() bool {
	return s == StateSubmitted || s == StateRejected || s == StateCancelled
}

// Event drives an attempt from one State to the next.
type Event string

const (
	EventSubmit              Event = "submit"
	EventReject              Event = "reject"
	EventAccept              Event = "accept"
	EventRequireConfirmation Event = "require_confirmation"
	EventConfirm             Event = "confirm"
	EventCancel              Event = "cancel"
	EventReset               Event = "reset"
)

var transitions = map[State]map[Event]State{
	StateIdle: {
		EventSubmit: StateValidating,
	},
	StateValidating: {
		EventReject:              StateRejected,
		EventAccept:              StateSubmitted,
		EventRequireConfirmation: StateAwaitingConfirmation,
	},
	StateAwaitingConfirmation: {
		EventConfirm: StateConfirmed,
		EventCancel:  StateCancelled,
	},
	StateConfirmed: {
		EventSubmit: StateSubmitted,
	},
	StateSubmitted: {
		EventReset: StateIdle,
	},
	StateCancelled: {
		EventReset: StateIdle,
	},
	StateRejected: {
		EventReset: StateIdle,
	},
}

// Next returns the state reached from s on e.
func Next(s State, e Event) (State, error) {
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, e, s)
}

// EventFor maps an evaluation outcome to the event leaving StateValidating.
func EventFor(o Outcome) Event {
	switch o.Kind {
	case KindValid:
		return EventAccept
	case KindRequiresConfirmation:
		return EventRequireConfirmation
	default:
		return EventReject
	}
}
