package main

import "companydir/internal/catalog"

type ListCmd struct {
	Query    string `short:"q" help:"Free-text filter, ignores case and accents"`
	Category string `short:"c" help:"Only companies in this category (exact match)"`
	Wilaya   string `short:"w" help:"Only companies in this wilaya (exact match)"`
	Sort     string `short:"s" default:"name-asc" help:"Sort order as <key>-<dir>, keys: name, category, wilaya, city, type"`
	Names    bool   `short:"n" help:"Output only company names (one per line)"`
	JSON     bool   `name:"json" help:"Output as JSON"`
}

func (cmd *ListCmd) query() (catalog.Query, error) {
	sort, err := catalog.ParseSort(cmd.Sort)
	if err != nil {
		return catalog.Query{}, err
	}
	return catalog.Query{
		Text:     cmd.Query,
		Category: cmd.Category,
		Wilaya:   cmd.Wilaya,
		Sort:     sort,
	}, nil
}

func (cmd *ListCmd) Run(g *Globals) error {
	q, err := cmd.query()
	if err != nil {
		return err
	}
	return runQuery(g, q, formatFor(cmd.Names, cmd.JSON))
}
