// Package console carries the screen logic of the admin console: each
// screen validates its draft state, drives a form machine so a
// submission cannot be doubled, calls the API layer, and reports either
// inline errors or a navigation target. Rendering is left to the
// caller.
package console

import (
	"time"
)

// Navigation is where a screen wants to go next. A non-zero Delay
// means the caller should show its success state first and navigate
// after the delay elapses.
type Navigation struct {
	Path  string
	Delay time.Duration
}

// Outcome is the result of one submission. Exactly one of Nav or
// Errors is meaningful; Message optionally carries success copy for
// screens that stay put. Busy means a submission was already in
// flight and this one was refused.
type Outcome struct {
	Nav     *Navigation
	Errors  map[string]string
	Message string
	Busy    bool
}

// Succeeded reports whether the submission went through.
func (o Outcome) Succeeded() bool {
	return !o.Busy && len(o.Errors) == 0
}

func failure(field, msg string) Outcome {
	return Outcome{Errors: map[string]string{field: msg}}
}

// serverField is the pseudo-field used for errors that belong to the
// whole form rather than a single input.
const serverField = "server"

// loginPath is where every expired or absent session lands.
const loginPath = "/login"
