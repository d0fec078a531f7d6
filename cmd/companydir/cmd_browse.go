package main

import (
	"companydir/cmd/companydir/render"
	"companydir/internal/catalog"
	"companydir/internal/ui"
	"companydir/internal/util"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

type BrowseCmd struct{}

type browseAction string

const (
	actionRefine browseAction = "refine"
	actionReset  browseAction = "reset"
	actionQuit   browseAction = "quit"
)

// browseState holds the form answers between rounds; sort is kept in its
// "<key>-<dir>" form so the select can bind to it directly.
type browseState struct {
	text     string
	category string
	wilaya   string
	sort     string
}

func newBrowseState() *browseState {
	return &browseState{sort: catalog.DefaultSort.String()}
}

func (s *browseState) reset() {
	*s = *newBrowseState()
}

func (s *browseState) query() (catalog.Query, error) {
	sort, err := catalog.ParseSort(s.sort)
	if err != nil {
		return catalog.Query{}, err
	}
	return catalog.Query{
		Text:     s.text,
		Category: s.category,
		Wilaya:   s.wilaya,
		Sort:     sort,
	}, nil
}

func (s *browseState) fields() []ui.Field {
	sortLabel := s.sort
	if sort, err := catalog.ParseSort(s.sort); err == nil {
		sortLabel = describeSort(sort)
	}
	return []ui.Field{
		{Label: "Search", Value: strings.TrimSpace(s.text), Placeholder: "anything"},
		{Label: "Category", Value: s.category, Placeholder: "all categories"},
		{Label: "Wilaya", Value: s.wilaya, Placeholder: "all wilayas"},
		{Label: "Sort", Value: sortLabel},
	}
}

func (s *browseState) form(cat *catalog.Catalog) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Name, description, city, wilaya, category or type").
				Value(&s.text),
			huh.NewSelect[string]().
				Title("Category").
				Options(vocabularyOptions(cat.Categories(), "All categories")...).
				Value(&s.category),
			huh.NewSelect[string]().
				Title("Wilaya").
				Options(vocabularyOptions(cat.Wilayas(), "All wilayas")...).
				Value(&s.wilaya),
			huh.NewSelect[string]().
				Title("Sort by").
				Options(sortOptions()...).
				Value(&s.sort),
		),
	).WithTheme(ui.WizardTheme())
}

func vocabularyOptions(values []string, anyLabel string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	opts = append(opts, huh.NewOption(anyLabel, ""))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func sortOptions() []huh.Option[string] {
	sorts := catalog.SortOptions()
	opts := make([]huh.Option[string], len(sorts))
	for i, s := range sorts {
		opts[i] = huh.NewOption(describeSort(s), s.String())
	}
	return opts
}

func describeSort(s catalog.Sort) string {
	key := string(s.Key)
	key = strings.ToUpper(key[:1]) + key[1:]
	if s.Dir == catalog.Descending {
		return key + " (Z → A)"
	}
	return key + " (A → Z)"
}

func nextActionForm(action *browseAction) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[browseAction]().
				Title("Next").
				Options(
					huh.NewOption("Refine filters", actionRefine),
					huh.NewOption("Reset filters", actionReset),
					huh.NewOption("Quit", actionQuit),
				).
				Value(action),
		),
	).WithTheme(ui.WizardTheme())
}

func (cmd *BrowseCmd) Run(g *Globals) error {
	state := newBrowseState()
	for {
		if err := state.form(g.Cat).Run(); err != nil {
			return formError(err)
		}

		q, err := state.query()
		if err != nil {
			return err
		}
		companies := catalog.Execute(g.Cat, q)
		g.logger().Debug("browse query executed", "sort", q.Sort.String(), "results", len(companies))
		writeBrowseResult(g.Out, g.Render, state, companies)

		action := actionRefine
		if err := nextActionForm(&action).Run(); err != nil {
			return formError(err)
		}
		switch action {
		case actionQuit:
			return nil
		case actionReset:
			state.reset()
		}
	}
}

func writeBrowseResult(w io.Writer, r render.Renderer, state *browseState, companies []catalog.Record) {
	var b strings.Builder
	b.WriteString(ui.RenderSummary("Companies", state.fields(), render.CountLabel(len(companies))))
	b.WriteString("\n")
	b.WriteString(r.RenderCompanyList(render.NewCompanyListView(companies)))
	assert.Success(io.WriteString(w, b.String()))
}

func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
