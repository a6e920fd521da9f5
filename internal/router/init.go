package router

import (
	"github.com/reelstream/reelstream/internal/application"
	"github.com/reelstream/reelstream/internal/container"
	pginfra "github.com/reelstream/reelstream/internal/infrastructure/postgres"
	"github.com/reelstream/reelstream/internal/infrastructure/tmdb"
	handlers "github.com/reelstream/reelstream/internal/interface/http"
	"github.com/reelstream/reelstream/internal/router/modules"
	"github.com/reelstream/reelstream/pkg/helpers"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is filled.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	cookies := helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure)

	authSvc := application.NewAuthService(
		pginfra.NewUserRepository(container.GetPGPool()),
		container.GetLogger(),
	)
	authHandler := handlers.NewAuthHandler(authSvc, container.GetJWT(), container.GetLogger(), cookies)

	catalogSvc := application.NewCatalogService(
		tmdb.NewClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL, cfg.TMDBLanguage),
		container.GetRedis(),
		container.GetLogger(),
		cfg.CategoryTTL,
	)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewCatalogModule(catalogHandler))
	r.AddPages(modules.NewPagesModule(handlers.NewPageHandler(cfg.AppName)))
}
