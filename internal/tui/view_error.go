package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError(width int, msg string) string {
	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Error: ")

	return styleBox.Copy().
		Width(width - 2).
		BorderForeground(colorError).
		Render(title + styleError.Render(msg))
}

func (a *App) renderNoResults(width int) string {
	hint := "Try a different query, or try again."
	if a.state.mode == modeExpressions {
		hint = "Try a different concept, tone, or try again."
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render("No results found"),
		styleSubtitle.Render(hint),
	)
	return styleBox.Copy().
		Width(width-2).
		BorderStyle(lipgloss.NormalBorder()).
		Align(lipgloss.Center).
		Render(content)
}
