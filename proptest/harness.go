package proptest

import (
	"companydir/internal/catalog"
	"testing"

	"pgregory.net/rapid"
)

const (
	minRecords          = 0
	maxRecords          = 20
	typicalMinRecords   = 1
	typicalMaxRecords   = 10
	transitivityMinSize = 3
	minUnrelatedRecords = 1
	maxUnrelatedRecords = 5
)

type Harness struct {
	T *rapid.T
}

func (h *Harness) GenRecord(opts ...RecordGenOpt) catalog.Record {
	return GenRecord(h.T, opts...)
}

func (h *Harness) GenRecords(minCount, maxCount int) []catalog.Record {
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numRecords")
	records := make([]catalog.Record, 0, n)
	for range n {
		records = append(records, h.GenRecord())
	}
	return records
}

// CatalogHarness owns the records a Catalog was built from, so tests can
// compare engine output against the source slice.
type CatalogHarness struct {
	Harness
	Records []catalog.Record
	Catalog *catalog.Catalog
}

func (h *CatalogHarness) Rebuild(records []catalog.Record) {
	h.Records = records
	h.Catalog = catalog.New(records)
}

func (h *CatalogHarness) Add(records ...catalog.Record) {
	h.Rebuild(append(append([]catalog.Record(nil), h.Records...), records...))
}

func (h *CatalogHarness) Execute(q catalog.Query) []catalog.Record {
	result := catalog.Execute(h.Catalog, q)
	verifyResultInvariants(h.T, h.Records, q, result)
	return result
}

func RunWithCatalog(t *testing.T, minCount, maxCount int, fn func(h *CatalogHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &CatalogHarness{Harness: Harness{T: rt}}
		harness.Rebuild(harness.GenRecords(minCount, maxCount))
		verifyCatalogInvariants(rt, harness.Records, harness.Catalog)
		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt})
	})
}
