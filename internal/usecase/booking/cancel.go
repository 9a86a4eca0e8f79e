package booking

import (
	"context"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/audit"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type Cancel struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCancel(repo schedule.Repository, auditD *audit.Dispatcher) *Cancel {
	return &Cancel{repo: repo, audit: auditD}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	userID string,
	role models.Role,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := schedule.CanCancel(schedule.Status(b.Status)); err != nil {
		return nil, err
	}

	switch role {
	case models.RoleStudent:
		if b.StudentID != userID {
			return nil, apperr.Forbidden("you are not allowed to cancel this booking")
		}
	case models.RoleTutor:
		profile, err := uc.repo.GetTutorProfileByUserID(ctx, userID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return nil, apperr.Forbidden("you are not allowed to cancel this booking")
			}
			return nil, err
		}
		if b.TutorID != profile.ID {
			return nil, apperr.Forbidden("you are not allowed to cancel this booking")
		}
	case models.RoleAdmin:
		// moderators may cancel any non-terminal booking
	default:
		return nil, apperr.Forbidden("you are not allowed to cancel this booking")
	}

	b.Status = string(schedule.StatusCancelled)
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
