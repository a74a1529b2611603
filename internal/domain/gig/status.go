package gig

import "github.com/freelancedesk/freelance-tracker/internal/httperr"

// ===============================
// Gig Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusActive
}

func IsValid(s Status) bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions lists every permitted move. Completed and cancelled gigs can be
// reopened, so no state is terminal; any enumerated target is reachable from
// any state. Status changes are operator decisions, not derived events, which
// is why nothing here sequences them.
var transitions = map[Status][]Status{
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusActive, StatusCancelled},
	StatusCancelled: {StatusActive, StatusCompleted},
}

// Transition validates a status change. Targets outside the enumerated set
// fail validation; a pair missing from the table (none today) would fail as
// an invalid transition.
func Transition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrValidation("invalid_gig_status")
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrInvalidTransition("gig_status_transition_not_allowed")
}
