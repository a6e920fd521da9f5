package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reelstream/reelstream/internal/application"
	"github.com/reelstream/reelstream/internal/domain/entity"
	"github.com/reelstream/reelstream/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// Search GET /api/search?q=
// An upstream failure degrades to an empty result set rather than an error
// page; a failed per-item enrichment only nulls that item's imdb_id.
func (h *CatalogHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"results": []entity.SearchResult{}})
		return
	}

	results, err := h.Svc.Search(c.Request.Context(), query)
	if err != nil {
		h.Logger.WithError(err).WithField("query", query).Warn("catalog search failed")
		c.JSON(http.StatusOK, gin.H{"results": []entity.SearchResult{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Category GET /api/movies/:category
func (h *CatalogHandler) Category(c *gin.Context) {
	name := c.Param("category")
	movies, err := h.Svc.Category(c.Request.Context(), name)
	if err != nil {
		h.Logger.WithError(err).WithField("category", name).Warn("category fetch failed")
		response.Error(c, http.StatusBadGateway, "catalog unavailable", nil)
		return
	}
	if movies == nil {
		movies = []entity.Movie{}
	}
	c.JSON(http.StatusOK, gin.H{"results": movies})
}
