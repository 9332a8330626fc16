package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ec-pharmacy-api/internal/models"
	"ec-pharmacy-api/internal/snapshot"

	"github.com/gin-gonic/gin"
)

// DataHandler serves the cleaned snapshot as data.json for clients that search locally.
type DataHandler struct {
	body []byte
	etag string
}

type dataDocument struct {
	Meta models.Meta     `json:"meta"`
	Data []models.Record `json:"data"`
}

// NewDataHandler encodes snap once; the snapshot never changes afterwards.
func NewDataHandler(snap *models.Snapshot) (*DataHandler, error) {
	body, err := json.Marshal(dataDocument{Meta: snap.Meta(), Data: snap.Records()})
	if err != nil {
		return nil, fmt.Errorf("handler: failed to encode snapshot: %w", err)
	}
	return &DataHandler{body: body, etag: `"` + snapshot.Fingerprint(body) + `"`}, nil
}

// Data handles GET /data.json requests
//
//	@Summary	Full cleaned snapshot
//	@Tags		data
//	@Produce	json
//	@Success	200
//	@Success	304
//	@Router		/data.json [get]
func (h *DataHandler) Data(c *gin.Context) {
	c.Header("ETag", h.etag)
	c.Header("Cache-Control", "public, max-age=300")
	if match := c.GetHeader("If-None-Match"); match != "" && match == h.etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.body)
}
