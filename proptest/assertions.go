package proptest

import (
	"companydir/internal/catalog"
	"companydir/internal/normalize"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func recordKey(r catalog.Record) string {
	return fmt.Sprintf("%q", []string{r.Name, r.Description, r.City, r.Wilaya, r.Category, r.Type, r.Website})
}

func assertRecordsEqual(t *rapid.T, expected, actual []catalog.Record) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

// assertSameRecords compares as multisets.
func assertSameRecords(t *rapid.T, expected, actual []catalog.Record) {
	t.Helper()
	less := func(a, b catalog.Record) bool { return recordKey(a) < recordKey(b) }
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty(), cmpopts.SortSlices(less)); diff != "" {
		t.Fatalf("record sets differ (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Record) {
	t.Helper()
	available := make(map[string]int)
	for _, r := range superset {
		available[recordKey(r)]++
	}
	for _, r := range subset {
		k := recordKey(r)
		if available[k] == 0 {
			t.Fatalf("subset contains record %q not in superset", r.Name)
		}
		available[k]--
	}
}

func assertSortedBy(t *rapid.T, records []catalog.Record, s catalog.Sort) {
	t.Helper()
	for i := 0; i < len(records)-1; i++ {
		a := normalizedField(records[i], s.Key)
		b := normalizedField(records[i+1], s.Key)
		order := strings.Compare(a, b)
		if s.Dir == catalog.Descending {
			order = -order
		}
		if order > 0 {
			t.Fatalf("[%s] violated for %s at positions %d, %d: %q then %q", InvResultSorted, s, i, i+1, a, b)
		}
	}
}

func assertNames(t *rapid.T, records []catalog.Record, want ...string) {
	t.Helper()
	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.Name
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func normalizedField(r catalog.Record, key catalog.SortKey) string {
	return normalize.String(r.Field(key))
}
