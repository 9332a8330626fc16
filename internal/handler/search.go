package handler

import (
	"context"
	"net/http"
	"strconv"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/presenter"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SearchHandler handles pharmacy search requests
type SearchHandler struct {
	service     SearchService
	pageSize    int
	previewSize int
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(context.Context, models.Query) ([]models.Record, error)
	Prefectures(context.Context) ([]string, error)
	Meta(context.Context) (models.Meta, error)
}

// SearchResponse is one paged view of a result set.
type SearchResponse struct {
	Total    int             `json:"total"`
	Shown    int             `json:"shown"`
	HasMore  bool            `json:"hasMore"`
	PageSize int             `json:"pageSize"`
	Status   string          `json:"status"`
	AsOf     string          `json:"asOf"`
	Items    []models.Record `json:"items"`
}

// MetaResponse describes the loaded snapshot.
type MetaResponse struct {
	models.Meta
	Count int `json:"count"`
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService, pageSize, previewSize int) *SearchHandler {
	if pageSize <= 0 {
		pageSize = presenter.DefaultPageSize
	}
	if previewSize <= 0 {
		previewSize = presenter.DefaultPreviewSize
	}
	return &SearchHandler{service: svc, pageSize: pageSize, previewSize: previewSize}
}

// Search handles GET /api/search requests
//
//	@Summary	Search pharmacies
//	@Tags		pharmacies
//	@Produce	json
//	@Param		q			query		string	false	"free text, every term must match"
//	@Param		pref		query		string	false	"exact prefecture name"
//	@Param		callAhead	query		bool	false	"only pharmacies that ask for a call ahead"
//	@Param		afterHours	query		bool	false	"only pharmacies with after-hours service"
//	@Param		limit		query		int		false	"number of results to show"
//	@Success	200			{object}	SearchResponse
//	@Failure	400			{object}	map[string]string
//	@Router		/api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var query models.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = n
	}

	results, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	meta, err := h.service.Meta(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("meta lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	pager := presenter.NewPagerForQuery(results, query, h.pageSize, h.previewSize)
	if limit > 0 {
		pager.WithLimit(limit)
	}

	c.JSON(http.StatusOK, SearchResponse{
		Total:    pager.Total(),
		Shown:    pager.Shown(),
		HasMore:  pager.HasMore(),
		PageSize: pager.PageSize(),
		Status:   pager.Status(),
		AsOf:     meta.AsOf,
		Items:    pager.Visible(),
	})
}

// Prefectures handles GET /api/prefectures requests
//
//	@Summary	Prefectures present in the data, north to south
//	@Tags		pharmacies
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/api/prefectures [get]
func (h *SearchHandler) Prefectures(c *gin.Context) {
	prefs, err := h.service.Prefectures(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Meta handles GET /api/meta requests
//
//	@Summary	Snapshot date and source
//	@Tags		pharmacies
//	@Produce	json
//	@Success	200	{object}	MetaResponse
//	@Router		/api/meta [get]
func (h *SearchHandler) Meta(c *gin.Context) {
	meta, err := h.service.Meta(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MetaResponse{Meta: meta, Count: meta.Records})
}
