package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-photo-catalog/catalog"
)

// CreatePhotoHandler uploads a new photo: tags and description arrive as
// query parameters, the photo bytes as the raw request body. The creator is
// the authenticated user's primary email; createdAt is set here, once.
func (s *Server) CreatePhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			s.writeError(w, badRequestf("missing photo name"))
			return
		}
		claim, ok := UserFromContext(r.Context())
		if !ok {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		query := r.URL.Query()
		metadata := catalog.NewMetadata(claim.PrimaryEmail, query.Get("tags"), query.Get("description"))

		if err := s.store.PutPhoto(r.Context(), name, r.Body, r.Header.Get("Content-Type"), metadata); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// UpdatePhotoHandler replaces tags and description from a JSON body. The
// original creator and creation time are preserved.
func (s *Server) UpdatePhotoHandler() http.HandlerFunc {
	type updateRequest struct {
		Tags        string `json:"tags"`
		Description string `json:"description"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			s.writeError(w, badRequestf("missing photo name"))
			return
		}
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, badRequestf("invalid update request body"))
			return
		}

		existing, err := s.store.GetMetadata(r.Context(), name)
		if err != nil {
			s.writeError(w, err)
			return
		}

		if err := s.store.PutMetadata(r.Context(), name, existing.WithUpdate(req.Tags, req.Description)); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// DeletePhotoHandler removes both the photo blob and its metadata.
func (s *Server) DeletePhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			s.writeError(w, badRequestf("missing photo name"))
			return
		}
		if err := s.store.DeletePhoto(r.Context(), name); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
