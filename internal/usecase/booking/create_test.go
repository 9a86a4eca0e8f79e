package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// 2026-01-05 is a Monday.
const (
	mondayNine   = "2026-01-05T09:00:00Z"
	mondayTen    = "2026-01-05T10:00:00Z"
	mondayEleven = "2026-01-05T11:00:00Z"
)

func setupTutor(repo *fakeRepo, rate float64) *models.TutorProfile {
	profile := repo.addProfile(models.TutorProfile{
		ID:         "tutor-1",
		UserID:     "user-tutor-1",
		HourlyRate: rate,
	})
	repo.availability = append(repo.availability, models.Availability{
		TutorID:   profile.ID,
		DayOfWeek: "mon",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	return profile
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	uc := NewCreate(repo, nil)

	b, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayNine,
		EndTime:   mondayTen,
	})
	require.NoError(t, err)

	assert.Equal(t, "student-1", b.StudentID)
	assert.Equal(t, "tutor-1", b.TutorID)
	assert.Equal(t, string(schedule.StatusConfirmed), b.Status)
	assert.Equal(t, 20.0, b.TotalPrice)
	assert.NotEmpty(t, b.ID)

	stored, err := repo.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, stored.ID)
}

func TestCreateBooking_FractionalHours(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	uc := NewCreate(repo, nil)

	// 90 minutes at 20/h must be exactly 30.0
	b, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayNine,
		EndTime:   "2026-01-05T10:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 30.0, b.TotalPrice)
}

func TestCreateBooking_InvalidTimes(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: "not-a-time",
		EndTime:   mondayTen,
	})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.EqualError(t, err, "invalid booking time")

	_, err = uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayTen,
		EndTime:   mondayNine,
	})
	assert.EqualError(t, err, "invalid time range")

	_, err = uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayTen,
		EndTime:   mondayTen,
	})
	assert.EqualError(t, err, "invalid time range")
}

func TestCreateBooking_NoAvailabilityThisDay(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	uc := NewCreate(repo, nil)

	// 2026-01-06 is a Tuesday; the tutor only publishes Mondays
	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: "2026-01-06T09:00:00Z",
		EndTime:   "2026-01-06T10:00:00Z",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "no availability this day")
}

func TestCreateBooking_OutsideWindow(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	uc := NewCreate(repo, nil)

	// partially before the 09:00-12:00 window
	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: "2026-01-05T08:00:00Z",
		EndTime:   "2026-01-05T09:30:00Z",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "tutor not available")

	// partially after
	_, err = uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: "2026-01-05T11:30:00Z",
		EndTime:   "2026-01-05T12:30:00Z",
	})
	assert.EqualError(t, err, "tutor not available")
}

func TestCreateBooking_ExactWindowAllowed(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	uc := NewCreate(repo, nil)

	// containment is inclusive: the full 09:00-12:00 window books fine
	b, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayNine,
		EndTime:   "2026-01-05T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 60.0, b.TotalPrice)
}

func TestCreateBooking_Conflict(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	repo.addBooking(models.Booking{
		TutorID:   "tutor-1",
		StudentID: "student-other",
		StartTime: mustParse(t, mondayTen),
		EndTime:   mustParse(t, mondayEleven),
		Status:    string(schedule.StatusConfirmed),
	})
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: "2026-01-05T10:30:00Z",
		EndTime:   "2026-01-05T11:30:00Z",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "slot already booked")
}

func TestCreateBooking_TouchingBookingsAllowed(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	repo.addBooking(models.Booking{
		TutorID:   "tutor-1",
		StudentID: "student-other",
		StartTime: mustParse(t, mondayTen),
		EndTime:   mustParse(t, mondayEleven),
		Status:    string(schedule.StatusConfirmed),
	})
	uc := NewCreate(repo, nil)

	// shares the 11:00 boundary minute with the existing booking
	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayEleven,
		EndTime:   "2026-01-05T12:00:00Z",
	})
	assert.NoError(t, err)
}

func TestCreateBooking_CancelledBookingDoesNotConflict(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	repo.addBooking(models.Booking{
		TutorID:   "tutor-1",
		StudentID: "student-other",
		StartTime: mustParse(t, mondayTen),
		EndTime:   mustParse(t, mondayEleven),
		Status:    string(schedule.StatusCancelled),
	})
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayTen,
		EndTime:   mondayEleven,
	})
	assert.NoError(t, err)
}

func TestCreateBooking_TutorNotFound(t *testing.T) {
	repo := newFakeRepo()
	// availability exists but the profile row is gone
	repo.availability = append(repo.availability, models.Availability{
		TutorID:   "tutor-1",
		DayOfWeek: "mon",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayNine,
		EndTime:   mondayTen,
	})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.EqualError(t, err, "tutor not found")
}

func TestCreateBooking_RepositoryFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo()
	setupTutor(repo, 20)
	repo.failErr = errors.New("connection refused")
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: mondayNine,
		EndTime:   mondayTen,
	})
	assert.False(t, apperr.Is(err, apperr.KindNotFound))
	assert.EqualError(t, err, "connection refused")
}

func TestCreateBooking_MidnightBoundaryWeekday(t *testing.T) {
	repo := newFakeRepo()
	profile := repo.addProfile(models.TutorProfile{
		ID:         "tutor-1",
		UserID:     "user-tutor-1",
		HourlyRate: 10,
	})
	repo.availability = append(repo.availability, models.Availability{
		TutorID:   profile.ID,
		DayOfWeek: "mon",
		StartTime: "00:00",
		EndTime:   "01:00",
	})
	uc := NewCreate(repo, nil)

	// Monday 00:00 UTC must resolve to mon, not sun
	b, err := uc.Execute(context.Background(), "student-1", CreateInput{
		TutorID:   "tutor-1",
		StartTime: "2026-01-05T00:00:00Z",
		EndTime:   "2026-01-05T01:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, b.TotalPrice)
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts.UTC()
}
