package main

import (
	"companydir/cmd/companydir/render"
	"companydir/internal/catalog"
	"companydir/internal/normalize"
	"companydir/internal/util"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

var (
	ErrNotFound  = errors.New("no company found matching")
	ErrNoWebsite = errors.New("company has no website")
)

type AmbiguousMatchError struct {
	Query   string
	Matches []catalog.Record
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple companies match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple companies match. Please be more specific:")
	for _, r := range e.Matches {
		fmt.Fprintf(w, "  - %s (%s)\n", r.Name, placeOf(r))
	}
}

func placeOf(r catalog.Record) string {
	switch {
	case r.City != "" && r.Wilaya != "" && r.City != r.Wilaya:
		return r.City + ", " + r.Wilaya
	case r.Wilaya != "":
		return r.Wilaya
	case r.City != "":
		return r.City
	default:
		return "unknown location"
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findCompany prefers records whose normalized name equals the query and
// falls back to a text search.
func findCompany(cat *catalog.Catalog, query string) (catalog.Record, error) {
	want := normalize.String(query)

	var matches []catalog.Record
	for _, r := range cat.All() {
		if normalize.String(r.Name) == want {
			matches = append(matches, r)
		}
	}
	if len(matches) == 0 {
		matches = catalog.Execute(cat, catalog.Query{Text: query, Sort: catalog.DefaultSort})
	}

	switch len(matches) {
	case 0:
		return catalog.Record{}, fmt.Errorf("%w: %s", ErrNotFound, query)
	case 1:
		return matches[0], nil
	default:
		return catalog.Record{}, &AmbiguousMatchError{Query: query, Matches: matches}
	}
}

type outputFormat int

const (
	formatCards outputFormat = iota
	formatNames
	formatJSON
)

func formatFor(names, asJSON bool) outputFormat {
	switch {
	case asJSON:
		return formatJSON
	case names:
		return formatNames
	default:
		return formatCards
	}
}

func runQuery(g *Globals, q catalog.Query, format outputFormat) error {
	warnUnknownFilters(g, q)

	companies := catalog.Execute(g.Cat, q)
	g.logger().Debug("query executed",
		"text", q.Text,
		"category", q.Category,
		"wilaya", q.Wilaya,
		"sort", q.Sort.String(),
		"results", len(companies),
	)
	return printCompanies(g, companies, format)
}

func warnUnknownFilters(g *Globals, q catalog.Query) {
	if q.Category != "" && !g.Cat.HasCategory(q.Category) {
		g.logger().Warn("unknown category", "category", q.Category, "known", g.Cat.Categories())
	}
	if q.Wilaya != "" && !g.Cat.HasWilaya(q.Wilaya) {
		g.logger().Warn("unknown wilaya", "wilaya", q.Wilaya, "known", g.Cat.Wilayas())
	}
}

func printCompanies(g *Globals, companies []catalog.Record, format outputFormat) error {
	switch format {
	case formatNames:
		for _, r := range companies {
			fmt.Fprintln(g.Out, r.Name)
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(companies)
	default:
		view := render.NewCompanyListView(companies)
		assert.Success(io.WriteString(g.Out, g.Render.RenderCompanyList(view)))
		return nil
	}
}

func splitCommand(s string) []string {
	var result []string
	var current strings.Builder
	var inQuote rune

	for _, r := range s {
		if inQuote != 0 {
			if r == inQuote {
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
			continue
		}
		switch r {
		case '"', '\'':
			inQuote = r
		case ' ', '\t':
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}
	return result
}

// browserCommand returns the command that opens url. $BROWSER wins over the
// platform opener.
func browserCommand(goos, browser, url string) (string, []string) {
	if parts := splitCommand(browser); len(parts) > 0 {
		return parts[0], append(parts[1:], url)
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func resolveBrowser(url string) (string, []string) {
	return browserCommand(runtime.GOOS, os.Getenv("BROWSER"), url)
}
