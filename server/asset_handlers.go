package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-photo-catalog/catalog"
)

type assetKind int

const (
	assetKindPhoto assetKind = iota
	assetKindMetadata
)

// AssetHandler streams raw object bytes, propagating Content-Type,
// Content-Length and Content-Encoding from the object store.
func (s *Server) AssetHandler(kind assetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if name == "" {
			s.writeError(w, badRequestf("missing asset name"))
			return
		}

		key := catalog.PhotoKey(name)
		if kind == assetKindMetadata {
			key = catalog.MetadataKey(name)
		}

		obj, err := s.store.GetObject(r.Context(), key)
		if err != nil {
			s.writeError(w, err)
			return
		}
		defer obj.Body.Close()

		if obj.ContentType != "" {
			w.Header().Set("Content-Type", obj.ContentType)
		}
		if obj.ContentEncoding != "" {
			w.Header().Set("Content-Encoding", obj.ContentEncoding)
		}
		if obj.ContentLength > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
		}

		if _, err := io.Copy(w, obj.Body); err != nil {
			// Headers are gone; the copy failure usually means the
			// client went away.
			log.Debug().Err(err).Str("key", key).Msg("asset stream aborted")
		}
	}
}
