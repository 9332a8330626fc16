package handler

import (
	"context"
	"net/http"
	"strconv"

	"ec-pharmacy-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PharmacyHandler handles single pharmacy lookups
type PharmacyHandler struct {
	service PharmacyService
}

// PharmacyService interface for dependency injection
type PharmacyService interface {
	Pharmacy(context.Context, int64) (*models.Record, error)
}

// NewPharmacyHandler creates a new pharmacy handler
func NewPharmacyHandler(svc PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{service: svc}
}

// Pharmacy handles GET /api/pharmacies/:id requests
//
//	@Summary	Pharmacy by its number in the source list
//	@Tags		pharmacies
//	@Produce	json
//	@Param		id	path		int	true	"pharmacy number"
//	@Success	200	{object}	models.Record
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/api/pharmacies/{id} [get]
func (h *PharmacyHandler) Pharmacy(c *gin.Context) {
	idStr := c.Param("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required path parameter 'id'"})
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return
	}

	record, err := h.service.Pharmacy(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pharmacy found with the specified id"})
		return
	}

	c.JSON(http.StatusOK, record)
}
