package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-photo-catalog/catalog"
	"github.com/jrsteele09/go-photo-catalog/storage"
	"github.com/stretchr/testify/require"
)

func seedEntry(t *testing.T, store *storage.Store, name string, createdAt time.Time, description string, tags ...string) {
	t.Helper()
	metadata := catalog.Metadata{
		CreatorEmail: "john.doe@example.com",
		CreatedAt:    createdAt,
		Tags:         tags,
		Description:  description,
	}
	require.NoError(t, store.PutMetadata(context.Background(), name, metadata))
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestListAllSkipsMalformedObjects(t *testing.T) {
	store := storage.NewMockForTests()
	projection := catalog.NewProjection(store)
	ctx := context.Background()

	require.NoError(t, store.PutBytes(ctx, "metadata/x.json", []byte("{not json"), "application/json"))
	seedEntry(t, store, "y", day(1), "a valid entry", "tag")

	all, err := projection.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "y", all[0].Name)
}

func TestListAllDerivesNames(t *testing.T) {
	store := storage.NewMockForTests()
	projection := catalog.NewProjection(store)

	seedEntry(t, store, "beach-day", day(2), "", "beach")
	seedEntry(t, store, "sunset", day(1), "", "sky")

	all, err := projection.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by createdAt
	require.Equal(t, "sunset", all[0].Name)
	require.Equal(t, "beach-day", all[1].Name)
}

func TestTagsWithSampleKeepsMostRecent(t *testing.T) {
	// Two stores seeded in opposite orders must elect the same
	// representative: the entry with the largest createdAt per tag.
	type entry struct {
		name      string
		createdAt time.Time
	}
	entries := []entry{
		{"oldest", day(1)},
		{"middle", day(2)},
		{"newest", day(3)},
	}

	forward := storage.NewMockForTests()
	for _, e := range entries {
		seedEntry(t, forward, e.name, e.createdAt, "", "shared", "unique-"+e.name)
	}
	backward := storage.NewMockForTests()
	for i := len(entries) - 1; i >= 0; i-- {
		seedEntry(t, backward, entries[i].name, entries[i].createdAt, "", "shared", "unique-"+entries[i].name)
	}

	for _, store := range []*storage.Store{forward, backward} {
		samples, err := catalog.NewProjection(store).TagsWithSample(context.Background())
		require.NoError(t, err)

		byTag := make(map[string]catalog.MetadataWithName)
		for _, s := range samples {
			byTag[s.Tag] = s.Sample
		}
		require.Len(t, byTag, 4)
		require.Equal(t, "newest", byTag["shared"].Name)
		require.Equal(t, "oldest", byTag["unique-oldest"].Name)
		require.Equal(t, "middle", byTag["unique-middle"].Name)
		require.Equal(t, "newest", byTag["unique-newest"].Name)
	}
}

func TestTagsWithSampleOneRepresentativePerTag(t *testing.T) {
	store := storage.NewMockForTests()
	seedEntry(t, store, "a", day(1), "", "x", "y")
	seedEntry(t, store, "b", day(2), "", "y", "z")

	samples, err := catalog.NewProjection(store).TagsWithSample(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 3)

	seen := make(map[string]bool)
	for _, s := range samples {
		require.False(t, seen[s.Tag], "duplicate representative for tag %s", s.Tag)
		seen[s.Tag] = true
	}
}

func TestByTagDescendingRecency(t *testing.T) {
	store := storage.NewMockForTests()
	seedEntry(t, store, "first", day(1), "", "holiday")
	seedEntry(t, store, "third", day(3), "", "holiday")
	seedEntry(t, store, "second", day(2), "", "holiday")
	seedEntry(t, store, "other", day(4), "", "work")

	entries, err := catalog.NewProjection(store).ByTag(context.Background(), "holiday")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"third", "second", "first"}, names)
}

func TestByTagExactMatchOnly(t *testing.T) {
	store := storage.NewMockForTests()
	seedEntry(t, store, "a", day(1), "", "Holiday")
	seedEntry(t, store, "b", day(2), "", "holiday")

	entries, err := catalog.NewProjection(store).ByTag(context.Background(), "holiday")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "b", entries[0].Name)
}

func TestByTagUnknownTagIsEmpty(t *testing.T) {
	store := storage.NewMockForTests()
	seedEntry(t, store, "a", day(1), "", "x")

	entries, err := catalog.NewProjection(store).ByTag(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, entries)
}
