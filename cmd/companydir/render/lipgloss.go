package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	missingValue = "—"
	noWebsite    = "No website"
	metaSep      = " · "
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	countStyle    lipgloss.Style
	nameStyle     lipgloss.Style
	categoryStyle lipgloss.Style
	descStyle     lipgloss.Style
	metaStyle     lipgloss.Style
	linkStyle     lipgloss.Style
	noLinkStyle   lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:         width,
		r:             r,
		countStyle:    r.NewStyle().Faint(true),
		nameStyle:     r.NewStyle().Bold(true),
		categoryStyle: r.NewStyle().Foreground(lipgloss.Color("6")),
		descStyle:     r.NewStyle(),
		metaStyle:     r.NewStyle().Faint(true),
		linkStyle:     r.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		noLinkStyle:   r.NewStyle().Faint(true).Italic(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderCompanyList(view CompanyListView) string {
	if view.IsEmpty() {
		return "No companies found.\n"
	}

	var sb strings.Builder
	sb.WriteString(r.countStyle.Render(view.CountLabel()))
	sb.WriteString("\n")
	for _, item := range view.Items {
		sb.WriteString("\n")
		sb.WriteString(r.renderItem(item))
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item CompanyCard) string {
	name := r.nameStyle.Render(orMissing(item.Name))
	category := r.categoryStyle.Render(orMissing(item.Category))

	padding := max(1, r.width-lipgloss.Width(name)-lipgloss.Width(category))
	headerLine := name + strings.Repeat(" ", padding) + category

	meta := strings.Join([]string{orMissing(item.City), orMissing(item.Wilaya), orMissing(item.Type)}, metaSep)

	var lines []string
	lines = append(lines, headerLine)
	if item.Description != "" {
		lines = append(lines, r.descStyle.Render("  "+item.Description))
	}
	lines = append(lines, r.metaStyle.Render("  "+meta))
	if item.Website != "" {
		lines = append(lines, "  "+r.linkStyle.Render(item.Website))
	} else {
		lines = append(lines, "  "+r.noLinkStyle.Render(noWebsite))
	}

	return strings.Join(lines, "\n") + "\n"
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
