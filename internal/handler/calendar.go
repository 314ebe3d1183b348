package handler

import (
	"net/http"
	"strconv"
	"timesheets/internal/service"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	svc *service.CalendarService
}

func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// GET /api/calendar/?year=N
func (h *CalendarHandler) List(c *gin.Context) {
	var year *int
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = &n
	}
	rows, err := h.svc.List(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
