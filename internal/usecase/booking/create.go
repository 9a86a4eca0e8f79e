package booking

import (
	"context"
	"time"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/audit"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	TutorID   string `json:"tutor_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Note      string `json:"note"`
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo schedule.Repository, auditD *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: auditD}
}

func (uc *Create) Execute(
	ctx context.Context,
	studentID string,
	in CreateInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Requested range
	// --------------------------------------------------
	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return nil, apperr.Validation("invalid booking time")
	}
	end, err := time.Parse(time.RFC3339, in.EndTime)
	if err != nil {
		return nil, apperr.Validation("invalid booking time")
	}

	start = start.UTC()
	end = end.UTC()

	if !start.Before(end) {
		return nil, apperr.Validation("invalid time range")
	}

	// --------------------------------------------------
	// Availability for the UTC weekday of the start
	// --------------------------------------------------
	weekday := schedule.WeekdayOf(start)

	slots, err := uc.repo.ListAvailabilityForDay(ctx, in.TutorID, weekday)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, apperr.Conflict("no availability this day")
	}

	startMin := schedule.MinutesOf(start)
	endMin := schedule.MinutesOf(end)

	// Containment is inclusive on both ends; a range crossing midnight
	// projects to endMin < startMin and matches nothing.
	matched := false
	for _, slot := range slots {
		slotStart, err := schedule.ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		slotEnd, err := schedule.ParseClock(slot.EndTime)
		if err != nil {
			continue
		}

		window := schedule.Interval{Start: slotStart, End: slotEnd}
		if window.Contains(startMin, endMin) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, apperr.Conflict("tutor not available")
	}

	// --------------------------------------------------
	// Conflict with existing bookings (strict half-open)
	// --------------------------------------------------
	if err := uc.repo.AssertNoBookingConflict(ctx, in.TutorID, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Price
	// --------------------------------------------------
	tutor, err := uc.repo.GetTutorProfileByID(ctx, in.TutorID)
	if err != nil {
		return nil, err
	}

	hours := end.Sub(start).Hours()
	totalPrice := tutor.HourlyRate * hours

	// --------------------------------------------------
	// Persist (conflict re-checked under lock by the repository)
	// --------------------------------------------------
	b := &models.Booking{
		TutorID:    in.TutorID,
		StudentID:  studentID,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: totalPrice,
		Status:     string(schedule.InitialStatus()),
		Note:       in.Note,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &studentID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
