package protocol

import (
	"fmt"

	"go.dedis.ch/onet/v3/log"
	uuid "gopkg.in/satori/go.uuid.v1"
)

// State of an in-flight fingerprint request, as seen by the initiator.
type State int

const (
	StateNew State = iota
	StateHashing
	StateMapping
	StateBlinding
	StateGathering
	StateCombining
	StateFinalizing
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateNew:        "New",
	StateHashing:    "Hashing",
	StateMapping:    "Mapping",
	StateBlinding:   "Blinding",
	StateGathering:  "Gathering",
	StateCombining:  "Combining",
	StateFinalizing: "Finalizing",
	StateDone:       "Done",
	StateFailed:     "Failed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// transitions lists the legal forward edges. Failed is reachable from every
// non-terminal state and is handled separately.
var transitions = map[State]State{
	StateNew:        StateHashing,
	StateHashing:    StateMapping,
	StateMapping:    StateBlinding,
	StateBlinding:   StateGathering,
	StateGathering:  StateCombining,
	StateCombining:  StateFinalizing,
	StateFinalizing: StateDone,
}

// Request tracks one fingerprint computation through its states. Requests are
// owned by a single goroutine and not shared.
type Request struct {
	ID    string
	state State
}

// NewRequest returns a request in the New state with a fresh id for log
// correlation.
func NewRequest() *Request {
	return &Request{ID: uuid.NewV4().String(), state: StateNew}
}

// State returns the current state.
func (r *Request) State() State {
	return r.state
}

// Advance moves the request to next, enforcing the transition table.
func (r *Request) Advance(next State) error {
	if r.state == StateDone || r.state == StateFailed {
		return fmt.Errorf("%w: request %s already terminal in %v", ErrInternal, r.ID, r.state)
	}
	if transitions[r.state] != next {
		return fmt.Errorf("%w: illegal transition %v -> %v for request %s", ErrInternal, r.state, next, r.ID)
	}
	log.Lvl3("request", r.ID, "entering", next)
	r.state = next
	return nil
}

// Fail moves the request to its terminal Failed state.
func (r *Request) Fail() {
	if r.state != StateDone {
		log.Lvl3("request", r.ID, "failed in", r.state)
		r.state = StateFailed
	}
}
