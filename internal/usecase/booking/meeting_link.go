package booking

import (
	"context"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/audit"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type UpdateMeetingLink struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewUpdateMeetingLink(repo schedule.Repository, auditD *audit.Dispatcher) *UpdateMeetingLink {
	return &UpdateMeetingLink{repo: repo, audit: auditD}
}

func (uc *UpdateMeetingLink) Execute(
	ctx context.Context,
	tutorUserID string,
	bookingID string,
	link string,
) (*models.Booking, error) {

	profile, err := uc.repo.GetTutorProfileByUserID(ctx, tutorUserID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.TutorID != profile.ID {
		return nil, apperr.Forbidden("you are not allowed to update this booking")
	}

	if err := schedule.CanUpdateMeetingLink(schedule.Status(b.Status)); err != nil {
		return nil, err
	}

	b.MeetingLink = link
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &tutorUserID,
		Action:   "meeting_link_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
