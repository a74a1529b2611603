package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id route param. Returns 0 and false for anything that
// is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
