package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FileServerHandler serves the prebuilt SPA from the configured directory.
func FileServerHandler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}

// StaticHandler serves static files with an index.html fallback for client
// side routes, so deep links into the SPA resolve.
func (s *Server) StaticHandler() http.HandlerFunc {
	dir := s.config.GetStaticFileDirectory()
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			s.fileServer.ServeHTTP(w, r)
			return
		}
		// Not a file on disk: API-shaped paths 404, everything else is a
		// client-side route.
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/asset/") || strings.HasPrefix(r.URL.Path, "/auth/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
