package schedule

import (
	"context"
	"time"

	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// Repository is the persistence boundary the booking and availability
// logic runs against. Production wires a gorm implementation; tests wire
// an in-memory fake.
//
// Get methods return apperr.NotFound when the row does not exist; any
// other error is an infrastructure failure and passes through untouched.
type Repository interface {
	// -------- Tutor profile --------
	GetTutorProfileByID(
		ctx context.Context,
		id string,
	) (*models.TutorProfile, error)

	GetTutorProfileByUserID(
		ctx context.Context,
		userID string,
	) (*models.TutorProfile, error)

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		tutorID string,
	) ([]models.Availability, error)

	ListAvailabilityForDay(
		ctx context.Context,
		tutorID string,
		day Weekday,
	) ([]models.Availability, error)

	// ReplaceAvailability deletes every slot of the tutor and inserts the
	// new set in a single transaction; the intermediate empty schedule is
	// never observable.
	ReplaceAvailability(
		ctx context.Context,
		tutorID string,
		slots []models.Availability,
	) error

	// -------- Booking (create / conflict) --------
	AssertNoBookingConflict(
		ctx context.Context,
		tutorID string,
		start time.Time,
		end time.Time,
	) error

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change / reads) --------
	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsByStudent(
		ctx context.Context,
		studentID string,
	) ([]models.Booking, error)

	ListBookingsByTutor(
		ctx context.Context,
		tutorID string,
	) ([]models.Booking, error)
}
