package booking

import "github.com/BruksfildServices01/marketplace-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanAccept: only a pending booking can be accepted.
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReject: only a pending booking can be rejected by the provider.
func CanReject(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: the requesting user may cancel only while pending.
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only an accepted booking can be completed.
func CanComplete(current Status) error {
	if current != StatusAccepted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
