package booking

import "github.com/glamora/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

// Terminal states accept no further primary transitions.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// OccupiesSlot reports whether a booking in this status counts toward
// slot occupancy. Rejecting a booking frees its slot.
func (s Status) OccupiesSlot() bool {
	return s != StatusRejected
}

// ===============================
// Validations
// ===============================

// CanTransition enforces the staff lifecycle:
//
//	pending  -> approved | rejected
//	approved -> completed
func CanTransition(from, to Status) error {
	switch from {
	case StatusPending:
		if to == StatusApproved || to == StatusRejected {
			return nil
		}
	case StatusApproved:
		if to == StatusCompleted {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}
