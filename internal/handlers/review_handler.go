package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/httpresp"
	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// Create records a review for the student's own completed booking and
// folds the rating into the tutor's aggregate inside one transaction.
func (h *ReviewHandler) Create(c *gin.Context) {
	studentID := middleware.UserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var booking models.Booking
	if err := h.db.Where("id = ?", req.BookingID).First(&booking).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking_not_found"})
		return
	}

	if booking.StudentID != studentID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not_your_booking"})
		return
	}

	if booking.Status != string(schedule.StatusCompleted) {
		c.JSON(http.StatusConflict, gin.H{"error": "only_completed_bookings_can_be_reviewed"})
		return
	}

	var existing int64
	h.db.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "booking_already_reviewed"})
		return
	}

	review := models.Review{
		BookingID: booking.ID,
		StudentID: studentID,
		TutorID:   booking.TutorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var profile models.TutorProfile
		if err := tx.Where("id = ?", booking.TutorID).First(&profile).Error; err != nil {
			return err
		}

		total := profile.AverageRating*float64(profile.ReviewCount) + float64(req.Rating)
		profile.ReviewCount++
		profile.AverageRating = total / float64(profile.ReviewCount)

		return tx.Save(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_review"})
		return
	}

	httpresp.Created(c, review)
}

func (h *ReviewHandler) ListForTutor(c *gin.Context) {
	tutorID := c.Param("id")

	var reviews []models.Review
	if err := h.db.
		Where("tutor_id = ?", tutorID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_reviews"})
		return
	}

	httpresp.List(c, reviews)
}
