package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tutorlinkhq/tutor-marketplace/internal/httpresp"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	category := models.Category{
		CategoryName: strings.TrimSpace(req.CategoryName),
	}

	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_already_exists"})
		return
	}

	httpresp.Created(c, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_categories"})
		return
	}

	httpresp.List(c, categories)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_category_id"})
		return
	}

	res := h.db.Delete(&models.Category{}, uint(id))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_category"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found"})
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
