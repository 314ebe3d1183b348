package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"timesheets/internal/logger"
	"timesheets/internal/model"
	"timesheets/internal/service"

	"github.com/gin-gonic/gin"
)

type TimeLogHandler struct {
	svc *service.TimeLogService
}

func NewTimeLogHandler(svc *service.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{svc: svc}
}

// POST /api/timelogs/
func (h *TimeLogHandler) Create(c *gin.Context) {
	var req model.TimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	tl, err := h.svc.Create(c.Request.Context(), req)
	if errors.Is(err, service.ErrBadTimestamp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger.Info("timelog.created", "id", tl.ID, "username", tl.Username,
		"hours", tl.CountHours)
	c.JSON(http.StatusOK, true)
}

// GET /api/timelogs/lists/:filters
// :filters is "username,epic_name,month"; an empty segment leaves that
// filter off.
func (h *TimeLogHandler) List(c *gin.Context) {
	filter, ok := parseTimeLogFilters(c)
	if !ok {
		return
	}
	logs, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []model.TimeLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// PUT /api/timelogs/?username=&epic_name=&date=&start_time=
func (h *TimeLogHandler) Update(c *gin.Context) {
	username := c.Query("username")
	epicName := c.Query("epic_name")
	if username == "" || epicName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and epic_name are required"})
		return
	}
	startTime := c.Query("start_time")
	if startTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time is required"})
		return
	}

	_, err := h.svc.UpdateStart(c.Request.Context(), username, epicName, c.Query("date"), startTime)
	if !h.writeMatchError(c, err, username, epicName) {
		return
	}
	c.JSON(http.StatusOK, true)
}

// DELETE /api/timelogs/?username=&epic_name=
func (h *TimeLogHandler) Delete(c *gin.Context) {
	username := c.Query("username")
	epicName := c.Query("epic_name")
	if username == "" || epicName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and epic_name are required"})
		return
	}

	err := h.svc.Delete(c.Request.Context(), username, epicName)
	if !h.writeMatchError(c, err, username, epicName) {
		return
	}
	c.Status(http.StatusOK)
}

// writeMatchError maps the exact-one-match failures; reports whether the
// operation succeeded.
func (h *TimeLogHandler) writeMatchError(c *gin.Context, err error, username, epicName string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no timelog matches username and epic_name"})
	case errors.Is(err, service.ErrAmbiguous):
		logger.Warn("timelog.ambiguous", "username", username, "epic_name", epicName)
		c.JSON(http.StatusConflict, gin.H{"error": "multiple timelogs match username and epic_name"})
	case errors.Is(err, service.ErrBadTimestamp):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
	return false
}

func parseTimeLogFilters(c *gin.Context) (model.TimeLogFilter, bool) {
	var filter model.TimeLogFilter
	parts := strings.SplitN(c.Param("filters"), ",", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	if parts[0] != "" {
		filter.Username = &parts[0]
	}
	if parts[1] != "" {
		filter.EpicName = &parts[1]
	}
	if parts[2] != "" {
		month, err := strconv.Atoi(parts[2])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return filter, false
		}
		filter.Month = &month
	}
	return filter, true
}
