package catalog

import (
	"companydir/internal/normalize"
	"slices"
	"strings"
)

// Execute returns the records of c that match q, ordered by q.Sort. The
// result is a new slice; neither c nor its records are modified. A nil
// catalog yields an empty result.
func Execute(c *Catalog, q Query) []Record {
	text := normalize.String(q.Text)

	results := make([]Record, 0)
	for _, r := range c.records() {
		if matchesFilter(r, text, q) {
			results = append(results, r)
		}
	}

	sortRecords(results, q.Sort)
	return results
}

// matchesFilter expects text already normalized.
func matchesFilter(r Record, text string, q Query) bool {
	if text != "" && !matchesQuery(r, text) {
		return false
	}
	if q.Category != "" && r.Category != q.Category {
		return false
	}
	if q.Wilaya != "" && r.Wilaya != q.Wilaya {
		return false
	}
	return true
}

func matchesQuery(r Record, text string) bool {
	for _, field := range r.searchable() {
		if strings.Contains(normalize.String(field), text) {
			return true
		}
	}
	return false
}

type sortEntry struct {
	key    string
	record Record
}

func sortRecords(records []Record, s Sort) {
	if len(records) < 2 {
		return
	}
	s = s.resolved()

	entries := make([]sortEntry, len(records))
	for i, r := range records {
		entries[i] = sortEntry{key: normalize.String(r.Field(s.Key)), record: r}
	}

	// Stable so that equal keys keep source order.
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		c := strings.Compare(a.key, b.key)
		if s.Dir == Descending {
			return -c
		}
		return c
	})

	for i, e := range entries {
		records[i] = e.record
	}
}
