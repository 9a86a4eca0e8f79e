package schedule

import "github.com/tutorlinkhq/tutor-marketplace/internal/apperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status every booking is created with. There is no
// pending-approval step: pending exists in the enum but is never produced.
func InitialStatus() Status {
	return StatusConfirmed
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transition guards
// ===============================

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return apperr.State("only confirmed bookings can be completed")
	}
	return nil
}

func CanCancel(current Status) error {
	if current.Terminal() {
		return apperr.State("cannot cancel")
	}
	return nil
}

func CanUpdateMeetingLink(current Status) error {
	switch current {
	case StatusCompleted:
		return apperr.State("cannot update a completed booking")
	case StatusCancelled:
		return apperr.State("cannot update a cancelled booking")
	}
	return nil
}
