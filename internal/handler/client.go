package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"timesheets/internal/logger"
	"timesheets/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// POST /api/clients/  body: {"name":"..."}
// A duplicate name answers 200 with a bare false body. Existing clients of
// the API depend on that shape, so it is kept as-is.
func (h *ClientHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	client, created, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !created {
		logger.Info("client.duplicate", "name", req.Name)
		c.JSON(http.StatusOK, false)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GET /api/clients/
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GET /api/clients/:id
// A miss answers 200 with a descriptive string, not a 404.
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusOK, fmt.Sprintf("There is no client with id = %d", id))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}
