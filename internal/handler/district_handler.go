package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/minewatch-gh/minewatch-backend-go/internal/service"
	"github.com/minewatch-gh/minewatch-backend-go/pkg/response"
)

// DistrictHandler handles HTTP requests for district tables.
type DistrictHandler struct {
	service *service.DistrictService
}

// NewDistrictHandler creates a district handler.
func NewDistrictHandler(service *service.DistrictService) *DistrictHandler {
	return &DistrictHandler{service: service}
}

// List handles GET /api/v1/districts.
func (h *DistrictHandler) List(c *gin.Context) {
	districts := h.service.List()
	response.Success(c, gin.H{
		"data":  districts,
		"count": len(districts),
	})
}

// Profile handles GET /api/v1/districts/:name/profile.
func (h *DistrictHandler) Profile(c *gin.Context) {
	response.Success(c, h.service.Profile(c.Param("name")))
}
