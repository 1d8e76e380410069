package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
