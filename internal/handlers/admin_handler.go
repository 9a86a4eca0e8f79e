package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tutorlinkhq/tutor-marketplace/internal/audit"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/httpresp"
	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditD *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditD}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	h.setUserStatus(c, models.UserStatusBanned, "user_banned")
}

func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.setUserStatus(c, models.UserStatusActive, "user_unbanned")
}

func (h *AdminHandler) setUserStatus(c *gin.Context, status, action string) {
	adminID := middleware.UserID(c)
	targetID := c.Param("id")

	var user models.User
	if err := h.db.Where("id = ?", targetID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	if user.Role == string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot_moderate_admin"})
		return
	}

	user.Status = status
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	var (
		totalUsers    int64
		totalTutors   int64
		totalBookings int64
		completed     int64
		revenue       float64
	)

	h.db.Model(&models.User{}).Count(&totalUsers)
	h.db.Model(&models.TutorProfile{}).Count(&totalTutors)
	h.db.Model(&models.Booking{}).Count(&totalBookings)
	h.db.Model(&models.Booking{}).
		Where("status = ?", string(schedule.StatusCompleted)).
		Count(&completed)
	h.db.Model(&models.Booking{}).
		Where("status = ?", string(schedule.StatusCompleted)).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue)

	httpresp.OK(c, gin.H{
		"total_users":        totalUsers,
		"total_tutors":       totalTutors,
		"total_bookings":     totalBookings,
		"completed_bookings": completed,
		"total_revenue":      revenue,
	})
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_audit_logs"})
		return
	}

	httpresp.List(c, logs)
}
