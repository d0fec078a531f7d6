package proptest

import (
	"companydir/internal/catalog"
	"slices"

	"pgregory.net/rapid"
)

const (
	InvVocabularyComplete  = "vocabulary lists every non-empty value"
	InvVocabularyDistinct  = "vocabulary values are distinct and sorted"
	InvAllPreservesSource  = "All() returns records in source order"
	InvResultSubset        = "result is a sub-multiset of the catalog"
	InvResultSorted        = "result is ordered by the sort key"
	InvResultMatchesFilter = "every result satisfies every filter"
)

func verifyCatalogInvariants(t *rapid.T, records []catalog.Record, cat *catalog.Catalog) {
	if cat.Len() != len(records) {
		t.Fatalf("[%s] violated: Len()=%d but %d records", InvAllPreservesSource, cat.Len(), len(records))
	}
	assertRecordsEqual(t, records, cat.All())

	checkVocabulary(t, "category", cat.Categories(), records, func(r catalog.Record) string { return r.Category })
	checkVocabulary(t, "wilaya", cat.Wilayas(), records, func(r catalog.Record) string { return r.Wilaya })
}

func checkVocabulary(t *rapid.T, name string, got []string, records []catalog.Record, field func(catalog.Record) string) {
	if !slices.IsSorted(got) || len(slices.Compact(slices.Clone(got))) != len(got) {
		t.Fatalf("[%s] violated: %s vocabulary %q", InvVocabularyDistinct, name, got)
	}

	want := make(map[string]bool)
	for _, r := range records {
		if v := field(r); v != "" {
			want[v] = true
		}
	}
	if len(want) != len(got) {
		t.Fatalf("[%s] violated: %s vocabulary has %d values, want %d", InvVocabularyComplete, name, len(got), len(want))
	}
	for _, v := range got {
		if !want[v] {
			t.Fatalf("[%s] violated: %s %q not present in any record", InvVocabularyComplete, name, v)
		}
	}
}

func verifyResultInvariants(t *rapid.T, records []catalog.Record, q catalog.Query, result []catalog.Record) {
	assertSubset(t, result, records)
	assertSortedBy(t, result, q.Sort)

	for _, r := range result {
		if !modelMatches(r, q) {
			t.Fatalf("[%s] violated: %q does not match %+v", InvResultMatchesFilter, r.Name, q)
		}
	}
}
