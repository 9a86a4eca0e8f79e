package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorlinkhq/tutor-marketplace/internal/apperr"
	"github.com/tutorlinkhq/tutor-marketplace/internal/cache"
	"github.com/tutorlinkhq/tutor-marketplace/internal/domain/schedule"
	"github.com/tutorlinkhq/tutor-marketplace/internal/httpresp"
	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	ucAvailability "github.com/tutorlinkhq/tutor-marketplace/internal/usecase/availability"
)

type AvailabilityHandler struct {
	replaceUC *ucAvailability.Replace
	repo      schedule.Repository
	cache     *cache.AvailabilityCache
}

func NewAvailabilityHandler(
	replaceUC *ucAvailability.Replace,
	repo schedule.Repository,
	availCache *cache.AvailabilityCache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		replaceUC: replaceUC,
		repo:      repo,
		cache:     availCache,
	}
}

type ReplaceAvailabilityRequest struct {
	Slots []ucAvailability.SlotInput `json:"slots"`
}

func (h *AvailabilityHandler) Replace(c *gin.Context) {
	userID := middleware.UserID(c)

	var req ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	grouped, err := h.replaceUC.Execute(c.Request.Context(), userID, req.Slots)
	if err != nil {
		apperr.Write(c, err)
		return
	}

	httpresp.OK(c, gin.H{"availability": grouped})
}

// Get serves a tutor's published weekly schedule, cache first.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	tutorID := c.Param("id")
	ctx := c.Request.Context()

	if h.cache != nil {
		if slots, hit, err := h.cache.Get(ctx, tutorID); err == nil && hit {
			httpresp.List(c, slots)
			return
		}
	}

	slots, err := h.repo.ListAvailability(ctx, tutorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	if h.cache != nil {
		_ = h.cache.Set(ctx, tutorID, slots)
	}

	httpresp.List(c, slots)
}
