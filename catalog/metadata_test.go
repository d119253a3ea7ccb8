package catalog_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-photo-catalog/catalog"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"duplicates and whitespace", "a, b, b, c", []string{"a", "b", "c"}},
		{"empty entries dropped", "a,,b, ,c", []string{"a", "b", "c"}},
		{"single tag", "sunset", []string{"sunset"}},
		{"empty string", "", nil},
		{"case preserved", "Sunset, sunset", []string{"Sunset", "sunset"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, catalog.ParseTags(tt.input))
		})
	}
}

func TestNewMetadataSetsCreatedAtOnce(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog.NowTimeFunc = func() time.Time { return created }
	defer func() { catalog.NowTimeFunc = time.Now }()

	metadata := catalog.NewMetadata("john.doe@example.com", "a, b, b, c", "a description")
	require.Equal(t, "john.doe@example.com", metadata.CreatorEmail)
	require.Equal(t, created, metadata.CreatedAt)
	require.Equal(t, []string{"a", "b", "c"}, metadata.Tags)

	updated := metadata.WithUpdate("x, y", "new description")
	require.Equal(t, "john.doe@example.com", updated.CreatorEmail)
	require.Equal(t, created, updated.CreatedAt)
	require.Equal(t, []string{"x", "y"}, updated.Tags)
	require.Equal(t, "new description", updated.Description)
}

func TestNameFromMetadataKey(t *testing.T) {
	require.Equal(t, "holiday", catalog.NameFromMetadataKey("metadata/holiday.json"))
	require.Equal(t, "metadata/holiday.json", catalog.MetadataKey("holiday"))
	require.Equal(t, "photo/holiday", catalog.PhotoKey("holiday"))
}

func TestHasTagExactMatch(t *testing.T) {
	metadata := catalog.Metadata{Tags: []string{"sunset", "Beach"}}
	require.True(t, metadata.HasTag("sunset"))
	require.False(t, metadata.HasTag("Sunset"))
	require.False(t, metadata.HasTag("beach"))
}

func TestMetadataWithNameOrdering(t *testing.T) {
	earlier := catalog.Metadata{CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	later := catalog.Metadata{CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}

	a := earlier.WithName("a")
	b := later.WithName("b")
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))

	// Identical timestamps fall back to the name
	c := earlier.WithName("c")
	require.True(t, a.Less(c))
	require.False(t, c.Less(a))
}
