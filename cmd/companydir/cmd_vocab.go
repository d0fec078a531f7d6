package main

import (
	"companydir/internal/catalog"
	"fmt"
	"io"
	"text/tabwriter"
)

type CategoriesCmd struct {
	Counts bool `help:"Show the number of companies per category"`
}

func (cmd *CategoriesCmd) Run(g *Globals) error {
	return printVocabulary(g.Out, g.Cat.Categories(), cmd.Counts, func(v string) catalog.Query {
		return catalog.Query{Category: v}
	}, g.Cat)
}

type WilayasCmd struct {
	Counts bool `help:"Show the number of companies per wilaya"`
}

func (cmd *WilayasCmd) Run(g *Globals) error {
	return printVocabulary(g.Out, g.Cat.Wilayas(), cmd.Counts, func(v string) catalog.Query {
		return catalog.Query{Wilaya: v}
	}, g.Cat)
}

func printVocabulary(out io.Writer, values []string, counts bool, filter func(string) catalog.Query, cat *catalog.Catalog) error {
	if !counts {
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%d\n", v, len(catalog.Execute(cat, filter(v))))
	}
	return w.Flush()
}
