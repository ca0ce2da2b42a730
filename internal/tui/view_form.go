package tui

import (
	"fmt"
	"strings"

	"github.com/sant0-9/lexis/internal/generation"
)

var fieldLabels = map[field]string{
	fieldQuery: "Concept",
	fieldTone:  "Tone",
	fieldForm:  "Form",
}

func (a *App) renderForm(width int) string {
	st := a.state
	f := st.form()
	loading := st.loading(st.mode)

	var lines []string
	for i, fd := range f.fields {
		label := fieldLabels[fd]
		if st.mode == modeExpand && fd == fieldQuery {
			label = "Query"
		}
		if st.mode == modeCompose && fd == fieldQuery {
			label = "Prompt"
		}

		ls := styleLabel
		if i == f.focus && !loading {
			ls = ls.Copy().Foreground(colorPrimary).Bold(true)
		}
		lines = append(lines, ls.Render(label)+f.input(fd).View())
	}

	if st.mode == modeCompose {
		lines = append(lines, "", a.renderStyleControls())
	}

	if f.validation != "" {
		lines = append(lines, "", styleError.Render(f.validation))
	}

	border := colorPrimary
	if loading {
		border = colorMuted
	}
	return styleBox.Copy().
		Width(width - 2).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderStyleControls() string {
	st := a.state
	row := func(k, label, value string) string {
		return styleSubtitle.Render(fmt.Sprintf("%-6s %-22s", k, label)) + value
	}

	var presets []string
	for i, p := range a.opts.Presets.All() {
		if i >= 9 {
			break
		}
		name := fmt.Sprintf("%d %s", i+1, p.Name)
		if p.Name == st.presetName {
			name = styleScore.Render(name)
		}
		presets = append(presets, name)
	}

	return strings.Join([]string{
		styleHeading.Render("Style") + styleSubtitle.Render("  preset: ") + st.presetName,
		styleSubtitle.Render("alt+   ") + strings.Join(presets, "  "),
		row("alt+c", "Sentence Complexity", st.style.SentenceComplexity.Label()),
		row("alt+l", "Lexical Density", st.style.LexicalDensity.Label()),
		row("alt+r", "Punctuation Rhythm", st.style.PunctuationRhythm.Label()),
		row("alt+f", "Figurative Frequency", st.style.FigurativeFrequency.Label()),
		"",
		styleHeading.Render("Formatting"),
		row("alt+t", "Font", st.formatting.Font.Label()),
		row("alt+a", "Alignment", st.formatting.Alignment.Label()),
	}, "\n")
}

// previewStyle is the style the next compose submit would use.
func (a *App) previewStyle() generation.StyleConfig {
	s := a.state.style
	s.Tone = strings.TrimSpace(a.state.forms[modeCompose].input(fieldTone).Value())
	return s
}
