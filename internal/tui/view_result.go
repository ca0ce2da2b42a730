package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lexis/internal/export"
	"github.com/sant0-9/lexis/internal/generation"
)

func (a *App) renderResult(width int) string {
	st := a.state
	switch st.mode {
	case modeExpand:
		if r, ok := st.expand.Result(); ok {
			return renderRanked(width, r)
		}
	case modeExpressions:
		if r, ok := st.expressions.Result(); ok {
			return renderRanked(width, r)
		}
	case modeCompose:
		if r, ok := st.compose.Result(); ok && r != nil {
			return renderComposition(width, r, st.formatting)
		}
	}
	return ""
}

// renderRanked draws each non-empty category as a boxed list of quoted
// suggestions with their scores.
func renderRanked(width int, r generation.Ranked) string {
	var boxes []string
	for _, c := range r.Categories() {
		if len(c.Items) == 0 {
			continue
		}

		inner := width - 4
		var lines []string
		lines = append(lines, styleHeading.Render(c.Heading()), "")
		for _, s := range c.Items {
			score := styleSubtitle.Render("Score: ") + styleScore.Render(export.FormatScore(s.Score))
			text := lipgloss.NewStyle().
				Width(max(inner-lipgloss.Width(score)-2, 10)).
				Render("“" + s.Text + "”")
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, text, "  ", score))
		}

		boxes = append(boxes, styleBox.Copy().
			Width(width-2).
			BorderForeground(colorPrimary).
			Render(strings.Join(lines, "\n")))
	}
	return strings.Join(boxes, "\n")
}

var textAlign = map[export.Alignment]lipgloss.Position{
	export.AlignLeft:   lipgloss.Left,
	export.AlignCenter: lipgloss.Center,
	export.AlignRight:  lipgloss.Right,
}

// renderComposition draws composed text. The terminal has one typeface, so
// only the alignment is applied here; the font is named in the header.
func renderComposition(width int, c *generation.Composition, f export.Formatting) string {
	header := styleHeading.Render(c.Form) +
		styleSubtitle.Render("  ·  "+truncate(c.Style.Tone, 40)+"  ·  "+f.Font.Label())
	body := lipgloss.NewStyle().
		Width(width - 4).
		Align(textAlign[f.Alignment]).
		Render(c.Text)

	return styleBox.Copy().
		Width(width - 2).
		BorderForeground(colorPrimary).
		Render(header + "\n\n" + body)
}
