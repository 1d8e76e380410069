package handlers

import (
	"net/http"

	"lacquer/services/availability"
	"lacquer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	Checker *availability.Checker
}

func NewAvailabilityHandler(checker *availability.Checker) *AvailabilityHandler {
	return &AvailabilityHandler{Checker: checker}
}

// GetAvailabilityHandler handles GET /api/availability?date=YYYY-MM-DD&service=Name
// (public). It returns the evaluator's verdict for every slot of the day so
// the booking form can disable unavailable slots before submission — the
// same decision path the server runs again on create.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	serviceName := c.Query("service")

	day, err := h.Checker.ForDate(c.Request.Context(), date, serviceName)
	if err != nil {
		if _, parseErr := availability.ParseDate(date); parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
			return
		}
		utils.GetLogger().Error("Availability evaluation failed",
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "availability evaluation failed"})
		return
	}
	c.JSON(http.StatusOK, day)
}
