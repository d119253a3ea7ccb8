package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/jrsteele09/go-photo-catalog/catalog"
)

// PutPhoto writes the photo blob first, then its metadata document. The two
// writes are not atomic: a crash in between leaves an orphaned photo with no
// metadata, which every catalog projection skips.
func (s *Store) PutPhoto(ctx context.Context, name string, body io.Reader, contentType string, metadata catalog.Metadata) error {
	if err := s.Put(ctx, catalog.PhotoKey(name), body, contentType); err != nil {
		return err
	}
	return s.PutMetadata(ctx, name, metadata)
}

// PutMetadata writes the metadata document for a photo.
func (s *Store) PutMetadata(ctx context.Context, name string, metadata catalog.Metadata) error {
	body, err := json.Marshal(metadata)
	if err != nil {
		return &Error{Op: "put", Key: catalog.MetadataKey(name), Err: err}
	}
	return s.PutBytes(ctx, catalog.MetadataKey(name), body, "application/json")
}

// GetMetadata reads and deserializes one photo's metadata document.
func (s *Store) GetMetadata(ctx context.Context, name string) (catalog.Metadata, error) {
	key := catalog.MetadataKey(name)
	body, err := s.Get(ctx, key)
	if err != nil {
		return catalog.Metadata{}, err
	}
	var metadata catalog.Metadata
	if err := json.Unmarshal(body, &metadata); err != nil {
		return catalog.Metadata{}, &Error{Op: "get", Key: key, Err: err}
	}
	return metadata, nil
}

// DeletePhoto removes both the photo blob and the metadata document. Each
// deletion is attempted even if the other fails; failures are reported as
// one aggregate error.
func (s *Store) DeletePhoto(ctx context.Context, name string) error {
	photoErr := s.Delete(ctx, catalog.PhotoKey(name))
	metadataErr := s.Delete(ctx, catalog.MetadataKey(name))
	return errors.Join(photoErr, metadataErr)
}
