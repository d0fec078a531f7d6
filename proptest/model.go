package proptest

import (
	"companydir/internal/catalog"
	"companydir/internal/normalize"
	"sort"
	"strings"
)

// modelMatches is a direct reading of the filter rules, kept independent
// of the engine's helpers.
func modelMatches(r catalog.Record, q catalog.Query) bool {
	if q.Category != "" && r.Category != q.Category {
		return false
	}
	if q.Wilaya != "" && r.Wilaya != q.Wilaya {
		return false
	}

	text := normalize.Normalize(q.Text)
	if text == "" {
		return true
	}
	for _, f := range []string{r.Name, r.Description, r.City, r.Wilaya, r.Category, r.Type} {
		if strings.Contains(normalize.Normalize(f), text) {
			return true
		}
	}
	return false
}

func modelExecute(records []catalog.Record, q catalog.Query) []catalog.Record {
	out := []catalog.Record{}
	for _, r := range records {
		if modelMatches(r, q) {
			out = append(out, r)
		}
	}

	key := q.Sort.Key
	if !key.Valid() {
		key = catalog.SortByName
	}
	desc := q.Sort.Dir == catalog.Descending
	sort.SliceStable(out, func(i, j int) bool {
		a := normalize.Normalize(out[i].Field(key))
		b := normalize.Normalize(out[j].Field(key))
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}
