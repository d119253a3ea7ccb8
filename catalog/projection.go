package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds the number of in-flight metadata fetches during a
// projection. The object-store client applies its own connection limits
// underneath.
const fetchConcurrency = 8

// Store is the slice of the object-store gateway the projection reads
// through.
type Store interface {
	// ListKeys returns every key under the prefix, following the store's
	// own pagination tokens.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	// Get returns the object's bytes, or storage.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}

// Projection derives catalog views from the raw metadata objects. There is
// no local index: every call re-lists and re-fetches, so reads are always
// fresh and the service holds no durable state.
type Projection struct {
	store Store
}

func NewProjection(store Store) *Projection {
	return &Projection{store: store}
}

// ListAll lists every metadata object and deserializes it. Objects that fail
// to parse are dropped silently: a crash between the photo write and the
// metadata write must degrade the catalog, not break it. Any store failure
// aborts the whole projection.
func (p *Projection) ListAll(ctx context.Context) ([]MetadataWithName, error) {
	keys, err := p.store.ListKeys(ctx, MetadataKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing metadata objects: %w", err)
	}

	entries := make([]*MetadataWithName, len(keys))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(fetchConcurrency)
	for i, key := range keys {
		group.Go(func() error {
			body, err := p.store.Get(groupCtx, key)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", key, err)
			}
			var metadata Metadata
			if err := json.Unmarshal(body, &metadata); err != nil {
				return nil // malformed document, skip
			}
			entry := metadata.WithName(NameFromMetadataKey(key))
			entries[i] = &entry
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	all := make([]MetadataWithName, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			all = append(all, *entry)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })
	return all, nil
}

// TagSample pairs a tag with its representative entry.
type TagSample struct {
	Tag    string           `json:"tag"`
	Sample MetadataWithName `json:"sample"`
}

// TagsWithSample maps every distinct tag to one representative entry: the
// one with the largest CreatedAt among all entries carrying the tag. The
// choice is independent of input order. Results come back sorted by tag so
// pagination windows are stable.
func (p *Projection) TagsWithSample(ctx context.Context) ([]TagSample, error) {
	all, err := p.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	samples := make(map[string]MetadataWithName)
	for _, entry := range all {
		for _, tag := range entry.Tags {
			current, ok := samples[tag]
			if !ok || current.Less(entry) {
				samples[tag] = entry
			}
		}
	}

	tags := make([]string, 0, len(samples))
	for tag := range samples {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	result := make([]TagSample, 0, len(tags))
	for _, tag := range tags {
		result = append(result, TagSample{Tag: tag, Sample: samples[tag]})
	}
	return result, nil
}

// ByTag returns every entry whose tag set contains tag (exact string match),
// most recent first.
func (p *Projection) ByTag(ctx context.Context, tag string) ([]MetadataWithName, error) {
	all, err := p.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []MetadataWithName
	for _, entry := range all {
		if entry.HasTag(tag) {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[j].Less(matched[i]) })
	return matched, nil
}
