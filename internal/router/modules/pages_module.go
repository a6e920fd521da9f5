package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/reelstream/reelstream/internal/interface/http"
)

// PagesModule registers the page shells gated by the route gate.

type PagesModule struct {
	Handler *handlers.PageHandler
}

func NewPagesModule(h *handlers.PageHandler) *PagesModule {
	return &PagesModule{Handler: h}
}

func (m *PagesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Home)
	rg.GET("/browse", m.Handler.Browse)
	rg.GET("/login", m.Handler.Login)
	rg.GET("/register", m.Handler.Register)
}
