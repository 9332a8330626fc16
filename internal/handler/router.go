package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the API router serves.
type Handlers struct {
	Search   *SearchHandler
	Pharmacy *PharmacyHandler
	Data     *DataHandler
	// Static holds index.html and its assets at the root.
	Static fs.FS
}

// NewRouter registers the API, the data file, the search page and the API docs.
func NewRouter(h Handlers) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	api.GET("/search", h.Search.Search)
	api.GET("/prefectures", h.Search.Prefectures)
	api.GET("/meta", h.Search.Meta)
	api.GET("/pharmacies/:id", h.Pharmacy.Pharmacy)

	r.GET("/data.json", h.Data.Data)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if h.Static != nil {
		index, err := fs.ReadFile(h.Static, "index.html")
		if err != nil {
			return nil, fmt.Errorf("handler: failed to read index.html: %w", err)
		}
		r.GET("/", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", index)
		})
		r.StaticFS("/static", http.FS(h.Static))
	}

	return r, nil
}
