package main

import "companydir/internal/catalog"

type SearchCmd struct {
	Text  string `arg:"" help:"Text to look for in name, description, city, wilaya, category and type"`
	Sort  string `short:"s" default:"name-asc" help:"Sort order as <key>-<dir>"`
	Names bool   `short:"n" help:"Output only company names (one per line)"`
	JSON  bool   `name:"json" help:"Output as JSON"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	sort, err := catalog.ParseSort(cmd.Sort)
	if err != nil {
		return err
	}
	return runQuery(g, catalog.Query{Text: cmd.Text, Sort: sort}, formatFor(cmd.Names, cmd.JSON))
}
