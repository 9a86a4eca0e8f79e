package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type TutorHandler struct {
	db *gorm.DB
}

func NewTutorHandler(db *gorm.DB) *TutorHandler {
	return &TutorHandler{db: db}
}

// --------- Requests ---------

type TutorProfileRequest struct {
	Bio         string  `json:"bio"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gt=0"`
	Experience  int     `json:"experience" binding:"min=0"`
	CategoryIDs []uint  `json:"category_ids"`
}

// --------- Handlers ---------

// UpsertProfile creates the tutor profile on first call and updates it
// afterwards. Subjects are replaced as a whole when category_ids is sent.
func (h *TutorHandler) UpsertProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var req TutorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var profile models.TutorProfile
	err := h.db.Where("user_id = ?", userID).First(&profile).Error

	created := false
	if err == gorm.ErrRecordNotFound {
		profile = models.TutorProfile{
			UserID:     userID,
			Bio:        req.Bio,
			HourlyRate: req.HourlyRate,
			Experience: req.Experience,
		}
		if err := h.db.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_profile"})
			return
		}
		created = true
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	} else {
		profile.Bio = req.Bio
		profile.HourlyRate = req.HourlyRate
		profile.Experience = req.Experience
		if err := h.db.Save(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
			return
		}
	}

	if req.CategoryIDs != nil {
		if err := h.replaceSubjects(profile.ID, req.CategoryIDs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_subjects"})
			return
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, profile)
}

func (h *TutorHandler) replaceSubjects(tutorID string, categoryIDs []uint) error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tutor_id = ?", tutorID).
			Delete(&models.TutorSubject{}).Error; err != nil {
			return err
		}

		if len(categoryIDs) == 0 {
			return nil
		}

		subjects := make([]models.TutorSubject, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			subjects = append(subjects, models.TutorSubject{
				TutorID:    tutorID,
				CategoryID: id,
			})
		}
		return tx.Create(&subjects).Error
	})
}

func (h *TutorHandler) GetMyProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var profile models.TutorProfile
	if err := h.db.
		Preload("Subjects.Category").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "tutor_profile_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *TutorHandler) List(c *gin.Context) {
	q := h.db.
		Preload("User").
		Preload("Subjects.Category").
		Order("average_rating DESC")

	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Joins(
			"JOIN tutor_subjects ON tutor_subjects.tutor_id = tutor_profiles.id AND tutor_subjects.category_id = ?",
			categoryID,
		)
	}

	var profiles []models.TutorProfile
	if err := q.Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_tutors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  profiles,
		"total": len(profiles),
	})
}

func (h *TutorHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var profile models.TutorProfile
	if err := h.db.
		Preload("User").
		Preload("Subjects.Category").
		Where("id = ?", id).
		First(&profile).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "tutor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	var slots []models.Availability
	if err := h.db.
		Where("tutor_id = ?", id).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      profile,
		"availability": slots,
	})
}
