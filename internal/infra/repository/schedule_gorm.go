package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Tutor profile
// --------------------------------------------------

func (r *ScheduleGormRepository) GetTutorProfileByID(
	ctx context.Context,
	id string,
) (*models.TutorProfile, error) {

	var profile models.TutorProfile
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tutor not found")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ScheduleGormRepository) GetTutorProfileByUserID(
	ctx context.Context,
	userID string,
) (*models.TutorProfile, error) {

	var profile models.TutorProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tutor profile not found")
		}
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAvailability(
	ctx context.Context,
	tutorID string,
) ([]models.Availability, error) {

	var slots []models.Availability
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ListAvailabilityForDay(
	ctx context.Context,
	tutorID string,
	day schedule.Weekday,
) ([]models.Availability, error) {

	var slots []models.Availability
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ? AND day_of_week = ?", tutorID, string(day)).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ScheduleGormRepository) ReplaceAvailability(
	ctx context.Context,
	tutorID string,
	slots []models.Availability,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tutor_id = ?", tutorID).
			Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		if len(slots) > 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *ScheduleGormRepository) AssertNoBookingConflict(
	ctx context.Context,
	tutorID string,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"tutor_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			tutorID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return apperr.Conflict("slot already booked")
	}
	return nil
}

// CreateBooking re-checks the conflict under a row lock before inserting.
// Without serializable isolation a race window remains between an outside
// conflict read and this insert; the lock narrows it to the span of this
// transaction.
func (r *ScheduleGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var overlapping []models.Booking
		if err := findOverlappingForUpdate(tx, b, &overlapping).Error; err != nil {
			return err
		}

		if len(overlapping) > 0 {
			return apperr.Conflict("slot already booked")
		}

		return tx.Create(b).Error
	})
}

// findOverlappingForUpdate selects and locks the bookings overlapping the
// candidate slot. Postgres forbids FOR UPDATE on aggregate queries, so the
// re-check fetches the rows themselves instead of counting them.
func findOverlappingForUpdate(tx *gorm.DB, b *models.Booking, dest *[]models.Booking) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"tutor_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			b.TutorID,
			b.EndTime,
			b.StartTime,
		).
		Find(dest)
}

func (r *ScheduleGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *ScheduleGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *ScheduleGormRepository) ListBookingsByStudent(
	ctx context.Context,
	studentID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Tutor").
		Preload("Tutor.User").
		Where("student_id = ?", studentID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ScheduleGormRepository) ListBookingsByTutor(
	ctx context.Context,
	tutorID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Student").
		Where("tutor_id = ?", tutorID).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
