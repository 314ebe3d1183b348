package handler

import (
	"errors"
	"net/http"
	"strconv"
	"timesheets/internal/logger"
	"timesheets/internal/model"
	"timesheets/internal/service"

	"github.com/gin-gonic/gin"
)

type ForecastHandler struct {
	svc *service.ForecastService
}

func NewForecastHandler(svc *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// POST /api/forecasts/
// A duplicate (epic, user, year, month) tuple answers 200 with a bare false
// body, same contract as client creation.
func (h *ForecastHandler) Create(c *gin.Context) {
	var req model.Forecast
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.ID = 0

	forecast, created, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !created {
		logger.Info("forecast.duplicate", "epic_id", req.EpicID, "user_id", req.UserID,
			"year", req.Year, "month", req.Month)
		c.JSON(http.StatusOK, false)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// GET /api/forecasts/
func (h *ForecastHandler) List(c *gin.Context) {
	h.list(c, model.ForecastFilter{})
}

// GET /api/forecasts/users/:user_id
func (h *ForecastHandler) ListByUser(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		return
	}
	h.list(c, model.ForecastFilter{UserID: &userID})
}

// GET /api/forecasts/users/:user_id/epics/:epic_id
func (h *ForecastHandler) MonthDays(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		return
	}
	epicID, ok := intParam(c, "epic_id")
	if !ok {
		return
	}
	rows, err := h.svc.MonthDays(c.Request.Context(), userID, epicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/forecasts/users/:user_id/epics/year/:year/month/:month
func (h *ForecastHandler) ListByUserYearMonth(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		return
	}
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	month, ok := intParam(c, "month")
	if !ok {
		return
	}
	h.list(c, model.ForecastFilter{UserID: &userID, Year: &year, Month: &month})
}

// GET /api/forecasts/users/:user_id/epics/:epic_id/year/:year/month/:month
func (h *ForecastHandler) ListByUserEpicYearMonth(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		return
	}
	epicID, ok := intParam(c, "epic_id")
	if !ok {
		return
	}
	year, ok := intParam(c, "year")
	if !ok {
		return
	}
	month, ok := intParam(c, "month")
	if !ok {
		return
	}
	h.list(c, model.ForecastFilter{UserID: &userID, EpicID: &epicID, Year: &year, Month: &month})
}

// DELETE /api/forecasts/?forecast_id=N
func (h *ForecastHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("forecast_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid forecast_id"})
		return
	}
	err = h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "forecast not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, true)
}

func (h *ForecastHandler) list(c *gin.Context, filter model.ForecastFilter) {
	rows, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rows == nil {
		rows = []model.ForecastRow{}
	}
	c.JSON(http.StatusOK, rows)
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
