package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/httpresp"
	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
	ucBooking "github.com/tutorlinkhq/tutor-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.Create
	complUC  *ucBooking.Complete
	cancelUC *ucBooking.Cancel
	linkUC   *ucBooking.UpdateMeetingLink
	repo     schedule.Repository
}

func NewBookingHandler(
	createUC *ucBooking.Create,
	complUC *ucBooking.Complete,
	cancelUC *ucBooking.Cancel,
	linkUC *ucBooking.UpdateMeetingLink,
	repo schedule.Repository,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		complUC:  complUC,
		cancelUC: cancelUC,
		linkUC:   linkUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type MeetingLinkRequest struct {
	MeetingLink string `json:"meeting_link" binding:"required,url"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	studentID := middleware.UserID(c)

	var req ucBooking.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), studentID, req)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	studentID := middleware.UserID(c)

	bookings, err := h.repo.ListBookingsByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_bookings"})
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListForTutor(c *gin.Context) {
	userID := middleware.UserID(c)

	profile, err := h.repo.GetTutorProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	bookings, err := h.repo.ListBookingsByTutor(c.Request.Context(), profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_bookings"})
		return
	}

	httpresp.List(c, bookings)
}

// Get returns one booking to its student, its tutor, or an admin.
func (h *BookingHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.UserRole(c)

	b, err := h.repo.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Write(c, err)
		return
	}

	allowed := role == models.RoleAdmin || b.StudentID == userID
	if !allowed && role == models.RoleTutor {
		if profile, err := h.repo.GetTutorProfileByUserID(c.Request.Context(), userID); err == nil {
			allowed = b.TutorID == profile.ID
		}
	}
	if !allowed {
		apperr.Write(c, apperr.Forbidden("you are not allowed to view this booking"))
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	userID := middleware.UserID(c)

	b, err := h.complUC.Execute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.UserRole(c)

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateMeetingLink(c *gin.Context) {
	userID := middleware.UserID(c)

	var req MeetingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.linkUC.Execute(c.Request.Context(), userID, c.Param("id"), req.MeetingLink)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.OK(c, b)
}
