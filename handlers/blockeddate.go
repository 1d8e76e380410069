package handlers

import (
	"errors"
	"net/http"

	"lacquer/services/blocked"
	"lacquer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BlockedDateHandler struct {
	Blocked blocked.BlockedService
}

func NewBlockedDateHandler(svc blocked.BlockedService) *BlockedDateHandler {
	return &BlockedDateHandler{Blocked: svc}
}

// CreateBlockedDateHandler handles POST /api/blocked-dates (admin).
func (h *BlockedDateHandler) CreateBlockedDateHandler(c *gin.Context) {
	var in blocked.CreateBlockedDateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bd, err := h.Blocked.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, blocked.ErrDuplicateDate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create blocked date", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bd)
}

// ListBlockedDatesHandler handles GET /api/blocked-dates (public).
func (h *BlockedDateHandler) ListBlockedDatesHandler(c *gin.Context) {
	dates, err := h.Blocked.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list blocked dates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blocked dates"})
		return
	}
	c.JSON(http.StatusOK, dates)
}

// GetBlockedDateHandler handles GET /api/blocked-dates/:id (admin).
func (h *BlockedDateHandler) GetBlockedDateHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blocked date id"})
		return
	}
	bd, err := h.Blocked.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blocked date not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bd)
}

// UpdateBlockedDateHandler handles PATCH /api/blocked-dates/:id (admin).
func (h *BlockedDateHandler) UpdateBlockedDateHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blocked date id"})
		return
	}
	var in blocked.UpdateBlockedDateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bd, err := h.Blocked.Update(c.Request.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "blocked date not found"})
		case errors.Is(err, blocked.ErrDuplicateDate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, bd)
}

// DeleteBlockedDateHandler handles DELETE /api/blocked-dates/:id (admin).
func (h *BlockedDateHandler) DeleteBlockedDateHandler(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blocked date id"})
		return
	}
	if err := h.Blocked.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blocked date not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blocked date deleted"})
}
