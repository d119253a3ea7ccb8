package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-photo-catalog/githubauth"
	"github.com/jrsteele09/go-photo-catalog/session"
	"github.com/jrsteele09/go-photo-catalog/storage"
)

// errBadRequest tags request-validation failures (bad page/pageSize, empty
// names). Wrapped with the human-readable detail.
var errBadRequest = errors.New("bad request")

func badRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errBadRequest}, args...)...)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the closed error taxonomy to status codes. Provider and
// storage detail stays in the log; the client sees only the taxonomy
// message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var storageErr *storage.Error
	switch {
	case errors.Is(err, session.ErrUserNotAuthorized):
		http.Error(w, session.ErrUserNotAuthorized.Error(), http.StatusUnauthorized)
	case errors.Is(err, session.ErrUserNotAllowed):
		http.Error(w, session.ErrUserNotAllowed.Error(), http.StatusUnauthorized)
	case errors.Is(err, githubauth.ErrAuthorize):
		http.Error(w, githubauth.ErrAuthorize.Error(), http.StatusInternalServerError)
	case errors.Is(err, errBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.As(err, &storageErr):
		log.Error().Err(err).Msg("storage request failed")
		http.Error(w, "failed to request storage", http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("unexpected error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
