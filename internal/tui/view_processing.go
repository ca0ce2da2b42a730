package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var loadingMessages = [modeCount]string{
	modeExpand:      "Expanding query...",
	modeExpressions: "Crafting literary expressions...",
	modeCompose:     "Composing...",
}

func (a *App) renderLoading(width, height int) string {
	st := a.state
	line := st.spinner.View() + " " + styleSubtitle.Render(loadingMessages[st.mode])

	var asked string
	switch st.mode {
	case modeExpand:
		asked = st.expand.Input()
	case modeExpressions:
		asked = st.expressions.Input()
	case modeCompose:
		asked = st.compose.Input()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		line,
		styleSubtitle.Render("> "+truncate(asked, width-6)),
	)
	return lipgloss.Place(width, min(height, 5), lipgloss.Center, lipgloss.Center, content)
}
