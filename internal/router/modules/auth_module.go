package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reelstream/reelstream/internal/container"
	handlers "github.com/reelstream/reelstream/internal/interface/http"
	"github.com/reelstream/reelstream/internal/interface/middleware"
	"github.com/reelstream/reelstream/pkg/helpers"
)

// AuthModule wires the credential endpoints and the identity endpoint.
// Public: POST /api/register, POST /api/login, POST /api/logout
// Protected: GET /api/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
