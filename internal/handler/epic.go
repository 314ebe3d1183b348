package handler

import (
	"errors"
	"net/http"
	"strconv"
	"timesheets/internal/model"
	"timesheets/internal/service"

	"github.com/gin-gonic/gin"
)

type EpicHandler struct {
	epics *service.EpicService
	areas *service.EpicAreaService
}

func NewEpicHandler(epics *service.EpicService, areas *service.EpicAreaService) *EpicHandler {
	return &EpicHandler{epics: epics, areas: areas}
}

// POST /api/epics/
func (h *EpicHandler) Create(c *gin.Context) {
	var req model.Epic
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.ID = 0
	epic, err := h.epics.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, epic)
}

// GET /api/epics/
func (h *EpicHandler) List(c *gin.Context) {
	epics, err := h.epics.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, epics)
}

// GET /api/epics/:id
func (h *EpicHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	epic, err := h.epics.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "epic not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, epic)
}

// POST /api/epic_areas/
func (h *EpicHandler) CreateArea(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	area, err := h.areas.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, area)
}

// GET /api/epic_areas/
func (h *EpicHandler) ListAreas(c *gin.Context) {
	areas, err := h.areas.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, areas)
}
