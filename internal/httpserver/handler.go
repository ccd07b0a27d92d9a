package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	generationHTTP "social-arch/internal/generation/delivery/http"
	"social-arch/internal/model"
	organizerHTTP "social-arch/internal/organizer/delivery/http"
	settingsHTTP "social-arch/internal/settings/delivery/http"
	syncHTTP "social-arch/internal/syncloop/delivery/http"
	trendHTTP "social-arch/internal/trend/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	srv.registerStatic()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/ping", srv.ping)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every configured domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	if srv.organizerHandler != nil {
		organizerHTTP.RegisterRoutes(api, srv.organizerHandler)
		srv.l.Infof(ctx, "Organizer routes registered at /api/v1/tasks and /api/v1/notes")
	}
	if srv.settingsHandler != nil {
		settingsHTTP.RegisterRoutes(api, srv.settingsHandler)
		srv.l.Infof(ctx, "Settings routes registered at /api/v1/settings")
	}
	if srv.trendHandler != nil {
		trendHTTP.RegisterRoutes(api, srv.trendHandler)
		srv.l.Infof(ctx, "Trend routes registered at /api/v1/trends")
	}
	if srv.generationHandler != nil {
		generationHTTP.RegisterRoutes(api, srv.generationHandler)
		srv.l.Infof(ctx, "Generation routes registered at /api/v1/generate")
	}
	if srv.syncHandler != nil {
		syncHTTP.RegisterRoutes(api, srv.syncHandler)
		srv.l.Infof(ctx, "Sync routes registered at /api/v1/sync")
	} else {
		srv.l.Infof(ctx, "Sync handler not configured, skipping sync routes")
	}
}

// ping answers the liveness probe of the dev proxy with a bare string.
func (srv *HTTPServer) ping(c *gin.Context) {
	c.String(http.StatusOK, "alive")
}
