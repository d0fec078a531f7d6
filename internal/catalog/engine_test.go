package catalog_test

import (
	"companydir/internal/catalog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func sortBy(key catalog.SortKey, dir catalog.SortDir) catalog.Sort {
	return catalog.Sort{Key: key, Dir: dir}
}

func TestExecute_Filter(t *testing.T) {
	cat := catalog.New(sampleRecords())

	t.Run("default query returns every record", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.DefaultQuery())

		assert.Equal(t, []string{"Atelier", "Boulangerie El Bahdja", "Café Nour", "Ève Design", "Zeta Logistics"}, names(got))
	})

	t.Run("text without accents matches accented name", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Text: "cafe"})

		assert.Equal(t, []string{"Café Nour"}, names(got))
	})

	t.Run("text is case-insensitive", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Text: "TORREFACTION"})

		assert.Equal(t, []string{"Café Nour"}, names(got))
	})

	t.Run("accented text matches", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Text: "Ève"})

		assert.Equal(t, []string{"Ève Design"}, names(got))
	})

	t.Run("text matches description", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Text: "poterie"})

		assert.Equal(t, []string{"Atelier"}, names(got))
	})

	t.Run("text matches city wilaya category and type", func(t *testing.T) {
		assert.Equal(t, []string{"Atelier"}, names(catalog.Execute(cat, catalog.Query{Text: "bab el"})))
		assert.Equal(t, []string{"Ève Design"}, names(catalog.Execute(cat, catalog.Query{Text: "tizi"})))
		assert.Equal(t, []string{"Zeta Logistics"}, names(catalog.Execute(cat, catalog.Query{Text: "logistics"})))
		assert.Equal(t, []string{"Zeta Logistics"}, names(catalog.Execute(cat, catalog.Query{Text: "spa"})))
	})

	t.Run("text does not match website", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Text: "example"})

		assert.Empty(t, got)
	})

	t.Run("whitespace text is matched literally", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Text: "  "})

		assert.Empty(t, got)
	})

	t.Run("category is an exact match", func(t *testing.T) {
		assert.Equal(t, []string{"Atelier", "Ève Design"}, names(catalog.Execute(cat, catalog.Query{Category: "Craft"})))
		assert.Empty(t, catalog.Execute(cat, catalog.Query{Category: "craft"}))
	})

	t.Run("wilaya is an exact match", func(t *testing.T) {
		assert.Equal(t, []string{"Atelier", "Café Nour"}, names(catalog.Execute(cat, catalog.Query{Wilaya: "Alger"})))
		assert.Empty(t, catalog.Execute(cat, catalog.Query{Wilaya: "alger"}))
	})

	t.Run("filters combine", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Category: "Food", Wilaya: "Alger"})

		assert.Equal(t, []string{"Café Nour"}, names(got))
	})

	t.Run("unknown category yields no results", func(t *testing.T) {
		got := catalog.Execute(cat, catalog.Query{Category: "Mining"})

		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestExecute_ConjunctiveExample(t *testing.T) {
	cat := catalog.New([]catalog.Record{
		{Name: "Café Nour", Category: "Food", Wilaya: "Alger"},
		{Name: "Atelier", Category: "Craft", Wilaya: "Alger"},
	})

	got := catalog.Execute(cat, catalog.Query{Text: "cafe", Wilaya: "Alger", Sort: catalog.DefaultSort})

	require.Len(t, got, 1)
	assert.Equal(t, catalog.Record{Name: "Café Nour", Category: "Food", Wilaya: "Alger"}, got[0])
}

func TestExecute_Sort(t *testing.T) {
	t.Run("name ascending folds accents", func(t *testing.T) {
		cat := catalog.New([]catalog.Record{{Name: "Zeta"}, {Name: "Alpha"}, {Name: "Ève"}})

		got := catalog.Execute(cat, catalog.Query{Sort: sortBy(catalog.SortByName, catalog.Ascending)})

		assert.Equal(t, []string{"Alpha", "Ève", "Zeta"}, names(got))
	})

	t.Run("name descending is the reverse", func(t *testing.T) {
		cat := catalog.New([]catalog.Record{{Name: "Zeta"}, {Name: "Alpha"}, {Name: "Ève"}})

		asc := catalog.Execute(cat, catalog.Query{Sort: sortBy(catalog.SortByName, catalog.Ascending)})
		desc := catalog.Execute(cat, catalog.Query{Sort: sortBy(catalog.SortByName, catalog.Descending)})

		slices.Reverse(asc)
		assert.Equal(t, asc, desc)
		assert.Equal(t, []string{"Zeta", "Ève", "Alpha"}, names(desc))
	})

	t.Run("city ascending", func(t *testing.T) {
		got := catalog.Execute(catalog.New(sampleRecords()), catalog.Query{Sort: sortBy(catalog.SortByCity, catalog.Ascending)})

		assert.Equal(t, []string{"Café Nour", "Atelier", "Boulangerie El Bahdja", "Zeta Logistics", "Ève Design"}, names(got))
	})

	t.Run("category ties keep source order", func(t *testing.T) {
		got := catalog.Execute(catalog.New(sampleRecords()), catalog.Query{Sort: sortBy(catalog.SortByCategory, catalog.Ascending)})

		assert.Equal(t, []string{"Atelier", "Ève Design", "Café Nour", "Boulangerie El Bahdja", "Zeta Logistics"}, names(got))
	})

	t.Run("missing values sort first ascending", func(t *testing.T) {
		got := catalog.Execute(catalog.New(sampleRecords()), catalog.Query{Sort: sortBy(catalog.SortByType, catalog.Ascending)})

		assert.Equal(t, []string{"Boulangerie El Bahdja", "Atelier", "Café Nour", "Ève Design", "Zeta Logistics"}, names(got))
	})

	t.Run("missing values sort last descending", func(t *testing.T) {
		got := catalog.Execute(catalog.New(sampleRecords()), catalog.Query{Sort: sortBy(catalog.SortByType, catalog.Descending)})

		assert.Equal(t, []string{"Zeta Logistics", "Café Nour", "Ève Design", "Atelier", "Boulangerie El Bahdja"}, names(got))
	})

	t.Run("wilaya descending", func(t *testing.T) {
		got := catalog.Execute(catalog.New(sampleRecords()), catalog.Query{Sort: sortBy(catalog.SortByWilaya, catalog.Descending)})

		assert.Equal(t, []string{"Ève Design", "Zeta Logistics", "Boulangerie El Bahdja", "Café Nour", "Atelier"}, names(got))
	})

	t.Run("unknown sort falls back to name ascending", func(t *testing.T) {
		cat := catalog.New(sampleRecords())

		got := catalog.Execute(cat, catalog.Query{Sort: catalog.Sort{Key: "website", Dir: "sideways"}})

		assert.Equal(t, catalog.Execute(cat, catalog.DefaultQuery()), got)
	})

	t.Run("zero sort is name ascending", func(t *testing.T) {
		cat := catalog.New(sampleRecords())

		assert.Equal(t, catalog.Execute(cat, catalog.DefaultQuery()), catalog.Execute(cat, catalog.Query{}))
	})

	t.Run("sorting happens after filtering", func(t *testing.T) {
		got := catalog.Execute(catalog.New(sampleRecords()), catalog.Query{
			Category: "Food",
			Sort:     sortBy(catalog.SortByName, catalog.Descending),
		})

		assert.Equal(t, []string{"Café Nour", "Boulangerie El Bahdja"}, names(got))
	})
}

func TestExecute_EmptyCatalog(t *testing.T) {
	queries := []catalog.Query{
		catalog.DefaultQuery(),
		{Text: "cafe", Category: "Food", Wilaya: "Alger", Sort: sortBy(catalog.SortByCity, catalog.Descending)},
	}

	for _, q := range queries {
		got := catalog.Execute(catalog.New(nil), q)
		require.NotNil(t, got)
		assert.Empty(t, got)

		got = catalog.Execute(nil, q)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestExecute_DoesNotMutate(t *testing.T) {
	records := sampleRecords()
	cat := catalog.New(records)
	before := cat.All()

	_ = catalog.Execute(cat, catalog.Query{Text: "a", Sort: sortBy(catalog.SortByName, catalog.Descending)})

	assert.Equal(t, before, cat.All())
	assert.Equal(t, sampleRecords(), records)
}

func TestExecute_FreshResult(t *testing.T) {
	cat := catalog.New(sampleRecords())

	first := catalog.Execute(cat, catalog.DefaultQuery())
	first[0].Name = "changed"
	second := catalog.Execute(cat, catalog.DefaultQuery())

	assert.Equal(t, "Atelier", second[0].Name)
}
