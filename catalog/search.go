package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// similarityThreshold rejects weak token matches. Jaro-Winkler scores
	// run from 0 (unrelated) to 1 (identical).
	similarityThreshold = 0.8
	// maxSearchResults caps a single search response.
	maxSearchResults = 30
)

// stopTokens are treated as token separators, never as query content.
var stopTokens = []string{"-", "_", "."}

// Search builds a disposable index over all current entries and ranks them
// against the free-text token by approximate string similarity. The index
// lives for this call only; nothing is cached between requests.
func (p *Projection) Search(ctx context.Context, token string) ([]MetadataWithName, error) {
	all, err := p.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	queryTokens := tokenize(token)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	type scored struct {
		entry MetadataWithName
		score float64
	}
	var matches []scored
	for _, entry := range all {
		score, ok := similarity(queryTokens, tokenize(searchText(entry)))
		if !ok {
			continue
		}
		matches = append(matches, scored{entry: entry, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	results := make([]MetadataWithName, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.entry)
	}
	return results, nil
}

// searchText is the entry's searchable content: name, description and tags,
// newline-joined.
func searchText(entry MetadataWithName) string {
	parts := make([]string, 0, len(entry.Tags)+2)
	parts = append(parts, entry.Name, entry.Description)
	parts = append(parts, entry.Tags...)
	return strings.Join(parts, "\n")
}

// tokenize lowercases and splits on whitespace and the stop tokens.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	for _, stop := range stopTokens {
		text = strings.ReplaceAll(text, stop, " ")
	}
	return strings.Fields(text)
}

// similarity scores query tokens against entry tokens. Every query token
// must find an entry token at or above the threshold; the score is the mean
// of those best matches. Returns false when any query token has no
// sufficiently similar counterpart.
func similarity(queryTokens, entryTokens []string) (float64, bool) {
	if len(entryTokens) == 0 {
		return 0, false
	}
	var total float64
	for _, qt := range queryTokens {
		best := 0.0
		for _, et := range entryTokens {
			if s := smetrics.JaroWinkler(qt, et, 0.7, 4); s > best {
				best = s
			}
		}
		if best < similarityThreshold {
			return 0, false
		}
		total += best
	}
	return total / float64(len(queryTokens)), true
}
