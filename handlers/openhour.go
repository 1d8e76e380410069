package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lacquer/services/hours"
	"lacquer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OpenHourHandler struct {
	Hours hours.HoursService
}

func NewOpenHourHandler(svc hours.HoursService) *OpenHourHandler {
	return &OpenHourHandler{Hours: svc}
}

// CreateOpenHourHandler handles POST /api/open-hours (admin).
func (h *OpenHourHandler) CreateOpenHourHandler(c *gin.Context) {
	var in hours.CreateOpenHourInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	oh, err := h.Hours.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, hours.ErrDuplicateDay) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create open hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, oh)
}

// ListOpenHoursHandler handles GET /api/open-hours (public).
func (h *OpenHourHandler) ListOpenHoursHandler(c *gin.Context) {
	all, err := h.Hours.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list open hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list open hours"})
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetOpenHourHandler handles GET /api/open-hours/:id (admin).
func (h *OpenHourHandler) GetOpenHourHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid open hour id"})
		return
	}
	oh, err := h.Hours.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "open hour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, oh)
}

// UpdateOpenHourHandler handles PATCH /api/open-hours/:id (admin).
func (h *OpenHourHandler) UpdateOpenHourHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid open hour id"})
		return
	}
	var in hours.UpdateOpenHourInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	oh, err := h.Hours.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "open hour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, oh)
}

// UpdateOpenHourByDayHandler handles PATCH /api/open-hours/day/:dayOfWeek (admin).
func (h *OpenHourHandler) UpdateOpenHourByDayHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("dayOfWeek"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayOfWeek must be 0-6"})
		return
	}
	var in hours.UpdateOpenHourInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	oh, err := h.Hours.UpdateByDay(c.Request.Context(), day, in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "open hour for day not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, oh)
}

// DeleteOpenHourHandler handles DELETE /api/open-hours/:id (admin).
func (h *OpenHourHandler) DeleteOpenHourHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid open hour id"})
		return
	}
	if err := h.Hours.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "open hour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Open hour deleted"})
}

// InitializeOpenHoursHandler handles POST /api/open-hours/initialize (admin).
func (h *OpenHourHandler) InitializeOpenHoursHandler(c *gin.Context) {
	if err := h.Hours.InitializeDefaults(c.Request.Context()); err != nil {
		utils.GetLogger().Error("Failed to initialize open hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default open hours initialized"})
}

// ResetOpenHoursHandler handles POST /api/open-hours/reset (admin).
func (h *OpenHourHandler) ResetOpenHoursHandler(c *gin.Context) {
	if err := h.Hours.ResetToDefaults(c.Request.Context()); err != nil {
		utils.GetLogger().Error("Failed to reset open hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Open hours reset to defaults"})
}
