package invoice

import "github.com/freelancedesk/freelance-tracker/internal/httperr"

// ===============================
// Invoice Status
// ===============================

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func InitialStatus() Status {
	return StatusDraft
}

func IsValid(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Pending reports whether an invoice in this status is awaiting payment.
func Pending(s Status) bool {
	return s == StatusSent || s == StatusOverdue
}

// transitions permits every pairwise move. Invoice status is asserted by the
// operator (marking overdue is a judgment call, not a computed event), so the
// workflow validates membership, not sequencing. Keep it that way unless
// product intent changes.
var transitions = map[Status][]Status{
	StatusDraft:   {StatusSent, StatusPaid, StatusOverdue},
	StatusSent:    {StatusDraft, StatusPaid, StatusOverdue},
	StatusPaid:    {StatusDraft, StatusSent, StatusOverdue},
	StatusOverdue: {StatusDraft, StatusSent, StatusPaid},
}

func Transition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrValidation("invalid_invoice_status")
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrInvalidTransition("invoice_status_transition_not_allowed")
}
