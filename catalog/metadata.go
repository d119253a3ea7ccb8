package catalog

import (
	"sort"
	"strings"
	"time"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Object-store key scheme. Reproduced exactly: photo bytes live under
// photo/<name>, the metadata document under metadata/<name>.json.
const (
	PhotoKeyPrefix    = "photo/"
	MetadataKeyPrefix = "metadata/"
	MetadataKeySuffix = ".json"
)

func PhotoKey(name string) string {
	return PhotoKeyPrefix + name
}

func MetadataKey(name string) string {
	return MetadataKeyPrefix + name + MetadataKeySuffix
}

// NameFromMetadataKey derives the catalog name from an object-store key by
// stripping the metadata prefix and the .json suffix.
func NameFromMetadataKey(key string) string {
	name := strings.TrimPrefix(key, MetadataKeyPrefix)
	return strings.TrimSuffix(name, MetadataKeySuffix)
}

// Metadata describes one photo. CreatedAt is set once at creation and is the
// authoritative ordering key: updates never touch it.
type Metadata struct {
	CreatorEmail string    `json:"creatorEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	Tags         []string  `json:"tags"`
	Description  string    `json:"description"`
}

// NewMetadata builds the metadata for a freshly uploaded photo. The tags
// string is comma-separated; entries are trimmed and duplicates collapsed.
func NewMetadata(creatorEmail, tags, description string) Metadata {
	return Metadata{
		CreatorEmail: creatorEmail,
		CreatedAt:    NowTimeFunc().UTC(),
		Tags:         ParseTags(tags),
		Description:  description,
	}
}

// WithUpdate returns a copy with tags and description replaced. Creator and
// creation time are preserved.
func (m Metadata) WithUpdate(tags, description string) Metadata {
	m.Tags = ParseTags(tags)
	m.Description = description
	return m
}

func (m Metadata) WithName(name string) MetadataWithName {
	return MetadataWithName{Metadata: m, Name: name}
}

// HasTag reports whether the exact tag is attached. No normalization.
func (m Metadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MetadataWithName is a Metadata plus its catalog-unique name. Name and
// CreatedAt together make the type totally ordered.
type MetadataWithName struct {
	Metadata
	Name string `json:"name"`
}

// Less orders by CreatedAt, then by Name to break ties.
func (m MetadataWithName) Less(other MetadataWithName) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return m.Name < other.Name
}

// ParseTags splits a comma-separated tag string into a sorted, deduplicated
// set. Whitespace around each tag is trimmed; empty entries are dropped.
func ParseTags(tags string) []string {
	seen := make(map[string]struct{})
	var parsed []string
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		parsed = append(parsed, tag)
	}
	sort.Strings(parsed)
	return parsed
}
