package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Modes
	modes := []string{
		"  Expand         Ranked search-query expansions",
		"  Expressions    Metaphors, similes, personifications",
		"  Compose        Prose in a chosen style and form",
	}

	modesBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(modes, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, modesBox))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Enter          Submit",
		"  Ctrl+O         Next mode",
		"  Tab            Next field",
		"  PgUp/PgDn      Scroll results",
		"  Ctrl+Y         Copy results as text",
		"  Ctrl+E         Save results as PDF",
		"  Ctrl+P         Settings",
		"  ?              Help (when the field is empty)",
		"  Esc            Go back / Quit",
		"",
		"  Compose only:",
		"  Alt+1..9       Apply style preset",
		"  Alt+C/L/R/F    Cycle complexity, lexical density,",
		"                 punctuation rhythm, figurative frequency",
		"  Alt+T / Alt+A  Cycle font / alignment of text and PDF",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
