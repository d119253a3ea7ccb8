package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-photo-catalog/catalog"
	"github.com/jrsteele09/go-photo-catalog/githubauth"
	"github.com/jrsteele09/go-photo-catalog/internal/config"
	"github.com/jrsteele09/go-photo-catalog/session"
	"github.com/jrsteele09/go-photo-catalog/storage"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	config     config.Config
	store      *storage.Store
	projection *catalog.Projection
	sessions   *session.Service
	github     *githubauth.Client
	fileServer http.Handler
	metrics    *metrics
}

func New(cfg config.Config, store *storage.Store, sessions *session.Service, github *githubauth.Client) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		config:     cfg,
		store:      store,
		projection: catalog.NewProjection(store),
		sessions:   sessions,
		github:     github,
		metrics:    newMetrics(),
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler(cfg.GetStaticFileDirectory())

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
