package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// fakeRepo is an in-memory schedule.Repository for usecase tests. Like the
// gorm implementation, missing rows come back as apperr.NotFound and a
// non-nil failErr stands in for an infrastructure failure.
type fakeRepo struct {
	profiles     []*models.TutorProfile
	availability []models.Availability
	bookings     map[string]*models.Booking

	failErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeRepo) addProfile(p models.TutorProfile) *models.TutorProfile {
	cp := p
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	f.profiles = append(f.profiles, &cp)
	return &cp
}

func (f *fakeRepo) addBooking(b models.Booking) *models.Booking {
	cp := b
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	f.bookings[cp.ID] = &cp
	return &cp
}

func (f *fakeRepo) GetTutorProfileByID(_ context.Context, id string) (*models.TutorProfile, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("tutor not found")
}

func (f *fakeRepo) GetTutorProfileByUserID(_ context.Context, userID string) (*models.TutorProfile, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperr.NotFound("tutor profile not found")
}

func (f *fakeRepo) ListAvailability(_ context.Context, tutorID string) ([]models.Availability, error) {
	var out []models.Availability
	for _, a := range f.availability {
		if a.TutorID == tutorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAvailabilityForDay(_ context.Context, tutorID string, day schedule.Weekday) ([]models.Availability, error) {
	var out []models.Availability
	for _, a := range f.availability {
		if a.TutorID == tutorID && a.DayOfWeek == string(day) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReplaceAvailability(_ context.Context, tutorID string, slots []models.Availability) error {
	var kept []models.Availability
	for _, a := range f.availability {
		if a.TutorID != tutorID {
			kept = append(kept, a)
		}
	}
	f.availability = append(kept, slots...)
	return nil
}

func (f *fakeRepo) conflictExists(tutorID string, start, end time.Time) bool {
	for _, b := range f.bookings {
		if b.TutorID != tutorID || b.Status == string(schedule.StatusCancelled) {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) AssertNoBookingConflict(_ context.Context, tutorID string, start, end time.Time) error {
	if f.conflictExists(tutorID, start, end) {
		return apperr.Conflict("slot already booked")
	}
	return nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if f.conflictExists(b.TutorID, b.StartTime, b.EndTime) {
		return apperr.Conflict("slot already booked")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) GetBookingByID(_ context.Context, id string) (*models.Booking, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, apperr.NotFound("booking not found")
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) ListBookingsByStudent(_ context.Context, studentID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StudentID == studentID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsByTutor(_ context.Context, tutorID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.TutorID == tutorID {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)
