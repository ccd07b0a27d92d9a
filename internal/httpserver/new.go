package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	generationHTTP "social-arch/internal/generation/delivery/http"
	"social-arch/internal/middleware"
	organizerHTTP "social-arch/internal/organizer/delivery/http"
	settingsHTTP "social-arch/internal/settings/delivery/http"
	syncHTTP "social-arch/internal/syncloop/delivery/http"
	trendHTTP "social-arch/internal/trend/delivery/http"
	"social-arch/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment string
	staticDir   string
	mw          middleware.Middleware

	// Domains
	organizerHandler  organizerHTTP.Handler
	settingsHandler   settingsHTTP.Handler
	trendHandler      trendHTTP.Handler
	generationHandler generationHTTP.Handler
	syncHandler       syncHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	StaticDir   string
	Middleware  middleware.Middleware

	// Domains. A nil handler leaves its routes unregistered.
	OrganizerHandler  organizerHTTP.Handler
	SettingsHandler   settingsHTTP.Handler
	TrendHandler      trendHTTP.Handler
	GenerationHandler generationHTTP.Handler
	SyncHandler       syncHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		staticDir:         cfg.StaticDir,
		mw:                cfg.Middleware,
		organizerHandler:  cfg.OrganizerHandler,
		settingsHandler:   cfg.SettingsHandler,
		trendHandler:      cfg.TrendHandler,
		generationHandler: cfg.GenerationHandler,
		syncHandler:       cfg.SyncHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
