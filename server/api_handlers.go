package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jrsteele09/go-photo-catalog/catalog"
	"github.com/jrsteele09/go-photo-catalog/pagination"
)

// UserHandler returns the verified session claim for the current request.
func (s *Server) UserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claim, ok := UserFromContext(r.Context())
		if !ok {
			// RequireUser always runs first; a missing claim is a
			// wiring bug, not a client error.
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, claim)
	}
}

// TagsWithSampleHandler returns one page of the tag -> representative-entry
// mapping, serialized as a JSON object keyed by tag.
func (s *Server) TagsWithSampleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize, err := pageParams(r.URL.Query())
		if err != nil {
			s.writeError(w, err)
			return
		}

		samples, err := s.projection.TagsWithSample(r.Context())
		if err != nil {
			s.writeError(w, err)
			return
		}

		window := pagination.Window(samples, page, pageSize)
		result := make(map[string]catalog.MetadataWithName, len(window))
		for _, sample := range window {
			result[sample.Tag] = sample.Sample
		}
		s.writeJSON(w, result)
	}
}

// MetadatasByTagHandler returns one page of the entries carrying the tag,
// most recent first.
func (s *Server) MetadatasByTagHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		tag := query.Get("tag")
		if tag == "" {
			s.writeError(w, badRequestf("missing tag parameter"))
			return
		}
		page, pageSize, err := pageParams(query)
		if err != nil {
			s.writeError(w, err)
			return
		}

		entries, err := s.projection.ByTag(r.Context(), tag)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, pagination.Window(entries, page, pageSize))
	}
}

// SearchHandler runs a fuzzy search over the whole catalog and returns up to
// 30 ranked entries.
func (s *Server) SearchHandler() http.HandlerFunc {
	type searchRequest struct {
		Token string `json:"token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, badRequestf("invalid search request body"))
			return
		}

		results, err := s.projection.Search(r.Context(), req.Token)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if results == nil {
			results = []catalog.MetadataWithName{}
		}
		s.writeJSON(w, results)
	}
}

// pageParams validates page and pageSize query parameters. Malformed values
// are a request-validation error, never a server error.
func pageParams(query url.Values) (page, pageSize int, err error) {
	page = 0
	if raw := query.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 0 {
			return 0, 0, badRequestf("invalid page %q", raw)
		}
	}
	pageSize = pagination.DefaultPageSize
	if raw := query.Get("pageSize"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return 0, 0, badRequestf("invalid pageSize %q", raw)
		}
	}
	return page, pageSize, nil
}
