package availability

import (
	"context"

	"go.uber.org/zap"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/audit"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SlotInput struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// DaySlots groups the persisted slots of one weekday, in the order the
// days first appeared in the request.
type DaySlots struct {
	Day   schedule.Weekday      `json:"day"`
	Slots []models.Availability `json:"slots"`
}

// Invalidator drops cached schedules after a successful replace.
type Invalidator interface {
	Invalidate(ctx context.Context, tutorID string) error
}

// ======================================================
// USE CASE
// ======================================================

type Replace struct {
	repo  schedule.Repository
	cache Invalidator
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewReplace(
	repo schedule.Repository,
	cache Invalidator,
	auditD *audit.Dispatcher,
	log *zap.Logger,
) *Replace {
	if log == nil {
		log = zap.NewNop()
	}
	return &Replace{
		repo:  repo,
		cache: cache,
		audit: auditD,
		log:   log,
	}
}

// Execute validates and atomically replaces the tutor's weekly schedule.
// Validation walks the slots in request order, so the same invalid input
// always reports the same failing day.
func (uc *Replace) Execute(
	ctx context.Context,
	tutorUserID string,
	slots []SlotInput,
) ([]DaySlots, error) {

	if len(slots) == 0 {
		return nil, apperr.Validation("slots required")
	}

	profile, err := uc.repo.GetTutorProfileByUserID(ctx, tutorUserID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.NotFound("create tutor profile first")
		}
		return nil, err
	}

	var (
		dayOrder  []schedule.Weekday
		intervals = map[schedule.Weekday][]schedule.Interval{}
		grouped   = map[schedule.Weekday][]models.Availability{}
	)

	for _, in := range slots {
		day, ok := schedule.ParseWeekday(in.DayOfWeek)
		if !ok {
			return nil, apperr.Validation("invalid day of week")
		}

		start, err := schedule.ParseClock(in.StartTime)
		if err != nil {
			return nil, apperr.Validation("invalid time range on " + string(day))
		}
		end, err := schedule.ParseClock(in.EndTime)
		if err != nil {
			return nil, apperr.Validation("invalid time range on " + string(day))
		}

		// start < end strictly; HasAnyOverlap relies on this holding.
		if start >= end {
			return nil, apperr.Validation("invalid time range on " + string(day))
		}

		if _, seen := intervals[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		intervals[day] = append(intervals[day], schedule.Interval{Start: start, End: end})
		grouped[day] = append(grouped[day], models.Availability{
			TutorID:   profile.ID,
			DayOfWeek: string(day),
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	for _, day := range dayOrder {
		if schedule.HasAnyOverlap(intervals[day]) {
			return nil, apperr.Validation("overlapping availability on " + string(day))
		}
	}

	var toCreate []models.Availability
	for _, day := range dayOrder {
		toCreate = append(toCreate, grouped[day]...)
	}

	if err := uc.repo.ReplaceAvailability(ctx, profile.ID, toCreate); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		// stale entries expire by TTL anyway, so a failed invalidation
		// is not fatal to the replace
		if err := uc.cache.Invalidate(ctx, profile.ID); err != nil {
			uc.log.Warn("failed to invalidate availability cache",
				zap.String("tutor_id", profile.ID),
				zap.Error(err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &tutorUserID,
		Action:   "availability_replaced",
		Entity:   "tutor_profile",
		EntityID: &profile.ID,
	})

	out := make([]DaySlots, 0, len(dayOrder))
	for _, day := range dayOrder {
		out = append(out, DaySlots{Day: day, Slots: grouped[day]})
	}
	return out, nil
}
