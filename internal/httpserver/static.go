package httpserver

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"social-arch/pkg/response"
)

var errRouteNotFound = errors.New("route not found")

// registerStatic serves the built UI from staticDir. Unknown non-API paths
// fall back to index.html so client-side routing works on reload.
func (srv *HTTPServer) registerStatic() {
	if srv.staticDir == "" {
		srv.gin.NoRoute(func(c *gin.Context) { response.NotFound(c, errRouteNotFound) })
		return
	}
	if _, err := os.Stat(filepath.Join(srv.staticDir, "index.html")); err != nil {
		srv.l.Warnf(context.Background(), "httpserver.registerStatic: no index.html in %s: %v", srv.staticDir, err)
	}

	srv.gin.NoRoute(srv.serveStatic)
}

func (srv *HTTPServer) serveStatic(c *gin.Context) {
	p := c.Request.URL.Path
	if strings.HasPrefix(p, "/api/") || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		response.NotFound(c, errRouteNotFound)
		return
	}

	// Clean against root so ".." cannot escape staticDir.
	rel := filepath.FromSlash(filepath.Clean("/" + p))
	file := filepath.Join(srv.staticDir, rel)
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	index := filepath.Join(srv.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		response.NotFound(c, errRouteNotFound)
		return
	}
	c.File(index)
}
