package proptest

import (
	"companydir/internal/catalog"

	"pgregory.net/rapid"
)

var (
	// Small vocabularies so that filters and sort ties actually collide.
	categories = []string{"Food", "Craft", "Logistics", "Énergie", "BTP"}
	wilayas    = []string{"Alger", "Oran", "Béjaïa", "Tizi Ouzou", "Sétif", "Blida"}
	types      = []string{"SARL", "EURL", "SPA", "SNC"}

	wordGen       = rapid.StringMatching(`[a-zA-Zéèêàçïô]{1,8}`)
	shortQueryGen = rapid.StringMatching(`[a-zéè]{1,3}`)
	queryGen      = rapid.StringMatching(`[a-zA-Zéè ]{0,6}`)
	unrelatedGen  = rapid.StringMatching(`[xyz]{5,10}`)
)

func optional(g *rapid.Generator[string]) *rapid.Generator[string] {
	return rapid.OneOf(rapid.Just(""), g)
}

func phraseGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		words := rapid.SliceOfN(wordGen, 1, 3).Draw(t, "words")
		s := words[0]
		for _, w := range words[1:] {
			s += " " + w
		}
		return s
	})
}

func sortGen() *rapid.Generator[catalog.Sort] {
	return rapid.SampledFrom(catalog.SortOptions())
}

type RecordGenOpt func(*catalog.Record)

func WithName(name string) RecordGenOpt {
	return func(r *catalog.Record) { r.Name = name }
}

func WithCategory(category string) RecordGenOpt {
	return func(r *catalog.Record) { r.Category = category }
}

func WithWilaya(wilaya string) RecordGenOpt {
	return func(r *catalog.Record) { r.Wilaya = wilaya }
}

func GenRecord(t *rapid.T, opts ...RecordGenOpt) catalog.Record {
	r := catalog.Record{
		Name:        phraseGen().Draw(t, "name"),
		Description: optional(phraseGen()).Draw(t, "description"),
		City:        optional(phraseGen()).Draw(t, "city"),
		Wilaya:      optional(rapid.SampledFrom(wilayas)).Draw(t, "wilaya"),
		Category:    optional(rapid.SampledFrom(categories)).Draw(t, "category"),
		Type:        optional(rapid.SampledFrom(types)).Draw(t, "type"),
		Website:     optional(rapid.StringMatching(`https://[a-z]{3,8}\.example`)).Draw(t, "website"),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func catalogQueryGen() *rapid.Generator[catalog.Query] {
	return rapid.Custom(func(t *rapid.T) catalog.Query {
		return catalog.Query{
			Text:     optional(queryGen).Draw(t, "text"),
			Category: optional(rapid.SampledFrom(categories)).Draw(t, "category"),
			Wilaya:   optional(rapid.SampledFrom(wilayas)).Draw(t, "wilaya"),
			Sort:     sortGen().Draw(t, "sort"),
		}
	})
}

func malformedJSONGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just(`[{"name": }]`),
		rapid.Just(`{"name": "not a list"}`),
		rapid.Just(`[1, 2, 3]`),
		rapid.Just(`["Café Nour"]`),
		rapid.Just(`[{"name": "unterminated`),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("name: not a list"),
		rapid.Just("- name: [unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("- name: \"unmatched quote"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
	)
}

// oddFieldGen yields YAML and JSON field values of the wrong type.
func oddFieldGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{
		"123",
		"-4.5",
		"true",
		"null",
		"[1, 2, 3]",
		`{"nested": "value"}`,
		`"plain"`,
	})
}
