package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reelstream/reelstream/internal/container"
	handlers "github.com/reelstream/reelstream/internal/interface/http"
	"github.com/reelstream/reelstream/internal/interface/middleware"
)

// CatalogModule exposes the movie catalog proxy.
// GET /api/search?q=   — filtered, enriched free-text search
// GET /api/movies/:category — cached category feeds for the carousels

type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP())

	rg.GET("/search", searchLimiter, m.Handler.Search)
	rg.GET("/movies/:category", m.Handler.Category)
}
