package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lexis/internal/config"
	"github.com/sant0-9/lexis/internal/session"
)

const logo = `
 ██╗     ███████╗██╗  ██╗██╗███████╗
 ██║     ██╔════╝╚██╗██╔╝██║██╔════╝
 ██║     █████╗   ╚███╔╝ ██║███████╗
 ██║     ██╔══╝   ██╔██╗ ██║╚════██║
 ███████╗███████╗██╔╝ ██╗██║███████║
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚══════╝
`

var modeIntro = [modeCount][2]string{
	modeExpand:      {"Expand Your Search Horizons", "Enter a keyword to generate contextually relevant search queries, ranked by semantic similarity."},
	modeExpressions: {"Awaiting Your Muse", "Enter a concept and a tone. Your generated literary expressions will appear here."},
	modeCompose:     {"Shape Your Prose", "Describe the piece, pick a form and tune the style. Your text will appear here."},
}

func (a *App) contentWidth() int {
	return max(min(76, a.width-4), 24)
}

func (a *App) renderMain() string {
	width := a.contentWidth()

	top := lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabs(width),
		"",
		a.renderForm(width),
	)
	status := a.renderStatusBar()

	vp := &a.state.viewport
	vp.Width = width
	vp.Height = max(a.height-lipgloss.Height(top)-lipgloss.Height(status)-2, 3)
	vp.SetContent(a.renderBody(width, vp.Height))

	content := lipgloss.JoinVertical(lipgloss.Left, top, "", vp.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(a.width, lipgloss.Center, content),
		"",
		lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status),
	)
}

func (a *App) renderTabs(width int) string {
	var tabs []string
	for m := mode(0); m < modeCount; m++ {
		style := styleTab
		if m == a.state.mode {
			style = styleTabActive
		}
		label := m.String()
		if a.state.loading(m) {
			label += " " + a.state.spinner.View()
		}
		tabs = append(tabs, style.Render(label))
	}

	name := styleLogo.Render("lexis")
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	gap := max(width-lipgloss.Width(name)-lipgloss.Width(row), 1)
	return name + strings.Repeat(" ", gap) + row
}

// renderBody draws the result area for the current mode.
func (a *App) renderBody(width, height int) string {
	m := a.state.mode
	switch a.state.view(m) {
	case session.ViewLoading:
		return a.renderLoading(width, height)
	case session.ViewFailed:
		return a.renderError(width, a.state.failure(m))
	case session.ViewEmpty:
		return a.renderNoResults(width)
	case session.ViewPopulated:
		return a.renderResult(width)
	}
	return a.renderWelcome(width, height)
}

func (a *App) renderWelcome(width, height int) string {
	intro := modeIntro[a.state.mode]
	parts := []string{}
	if height >= 12 {
		parts = append(parts, styleLogo.Render(logo))
	}
	parts = append(parts,
		lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(intro[0]),
		styleSubtitle.Copy().Width(min(width, 60)).Align(lipgloss.Center).Render(intro[1]),
	)
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (a *App) renderStatusBar() string {
	var parts []string

	provider := a.opts.Config.Provider
	if info := config.GetProvider(provider); info != nil {
		provider = info.Name
	}
	conn := styleSuccess.Render("●")
	switch {
	case a.state.providerError != nil:
		conn = styleError.Render("●")
	case !a.state.providerReady:
		conn = styleSubtitle.Render("●")
	}
	parts = append(parts, fmt.Sprintf("%s %s · %s", conn, provider, a.opts.Config.Model))

	if a.state.notice != "" {
		style := styleSuccess
		if a.state.noticeError {
			style = styleError
		}
		parts = append(parts, style.Render(truncate(a.state.notice, 50)))
	}

	line := styleStatusBar.Render(strings.Join(parts, "  "))
	return lipgloss.JoinVertical(lipgloss.Center, line, a.state.help.View(keys))
}
