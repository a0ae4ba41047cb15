// Package form models the lifecycle of a single submitting screen:
// Idle → Submitting → Succeeded or Failed, with both terminal states
// allowing a fresh submission.
package form

import (
	"errors"
)

// ErrAlreadySubmitting is returned when Begin is called while a
// submission is in flight. The caller keeps its trigger disabled.
var ErrAlreadySubmitting = errors.New("submission already in progress")

type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Machine tracks one form's submission state. The zero value is Idle.
type Machine struct {
	state State
	err   error
}

// State reports the current state.
func (m *Machine) State() State { return m.state }

// Err returns the failure from the last submission, nil otherwise.
func (m *Machine) Err() error {
	if m.state != Failed {
		return nil
	}
	return m.err
}

// CanSubmit reports whether a new submission may begin. False only
// while one is in flight.
func (m *Machine) CanSubmit() bool { return m.state != Submitting }

// Begin moves to Submitting, refusing a duplicate concurrent submit.
func (m *Machine) Begin() error {
	if m.state == Submitting {
		return ErrAlreadySubmitting
	}
	m.state = Submitting
	m.err = nil
	return nil
}

// Finish records the submission outcome and re-enables the form. A nil
// err means success.
func (m *Machine) Finish(err error) {
	if err != nil {
		m.state = Failed
		m.err = err
		return
	}
	m.state = Succeeded
	m.err = nil
}
