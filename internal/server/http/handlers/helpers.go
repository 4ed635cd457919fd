package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathID extracts a positive integer identifier from a path parameter.
// Responds with 400 and aborts when the value is malformed.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
