package main

import (
	"fmt"
	"io"
)

type ShowCmd struct {
	Name    string `arg:"" help:"Company name or partial match"`
	Website bool   `help:"Output only the website (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	company, err := findCompany(g.Cat, cmd.Name)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if cmd.Website {
		if !company.HasWebsite() {
			return fmt.Errorf("%w: %s", ErrNoWebsite, company.Name)
		}
		fmt.Fprintln(g.Out, company.Website)
		return nil
	}

	fmt.Fprintf(g.Out, "Name:        %s\n", company.Name)
	printField(g.Out, "Category:", company.Category)
	printField(g.Out, "Type:", company.Type)
	printField(g.Out, "City:", company.City)
	printField(g.Out, "Wilaya:", company.Wilaya)
	if company.HasWebsite() {
		fmt.Fprintf(g.Out, "Website:     %s\n", company.Website)
	} else {
		fmt.Fprintln(g.Out, "Website:     none")
	}
	printField(g.Out, "Description:", company.Description)
	return nil
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-13s%s\n", label, value)
}
