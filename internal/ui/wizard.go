package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

// Field is one answered form question. Fields without a value show
// Placeholder, or are left out when it is empty too.
type Field struct {
	Label       string
	Value       string
	Placeholder string
}

func (f Field) display() string {
	if f.Value != "" {
		return f.Value
	}
	return f.Placeholder
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func placeholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

// RenderSummary draws the answered fields inside a left border, with footer
// on the closing line.
func RenderSummary(title string, fields []Field, footer string) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.display() == "" {
			continue
		}
		b.WriteString(renderField(f))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	b.WriteString(border.Render(borderBottom))
	if footer != "" {
		b.WriteString(" ")
		b.WriteString(footer)
	}
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) string {
	value := f.Value
	if value == "" {
		value = placeholderStyle().Render(f.Placeholder)
	}

	var b strings.Builder
	b.WriteString(completeSymbol)
	b.WriteString(" ")
	b.WriteString(f.Label)
	b.WriteString(separator)
	b.WriteString(value)
	return b.String()
}
