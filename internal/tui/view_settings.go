package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lexis/internal/config"
	"github.com/sant0-9/lexis/internal/generation"
)

func (a *App) renderSettings() string {
	var b strings.Builder
	cfg := a.opts.Config

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	providerName := cfg.Provider
	var models []string
	if p := config.GetProvider(cfg.Provider); p != nil {
		providerName = p.Name
		if p.Description != "" {
			providerName += styleSubtitle.Render(" (" + p.Description + ")")
		}
		models = p.Models
	}

	status := "checking..."
	switch {
	case a.state.providerError != nil:
		status = styleError.Render(truncate(a.state.providerError.Error(), 36))
	case a.state.providerReady:
		status = styleSuccess.Render("reachable")
	}

	logPath, _ := cfg.LogPath()
	configLines := []string{
		fmt.Sprintf("  Provider: %s", providerName),
		fmt.Sprintf("  Model:    %s", cfg.Model),
		fmt.Sprintf("  API Key:  %s", maskKey(cfg.APIKey)),
		fmt.Sprintf("  Status:   %s", status),
	}
	if len(models) > 0 {
		configLines = append(configLines, fmt.Sprintf("  Models:   %s", styleSubtitle.Render(truncate(strings.Join(models, ", "), 36))))
	}
	if cfg.BaseURL != "" {
		configLines = append(configLines, fmt.Sprintf("  Base URL: %s", truncate(cfg.BaseURL, 36)))
	}
	configLines = append(configLines,
		"",
		fmt.Sprintf("  Log:      %s", truncate(logPath, 36)),
		fmt.Sprintf("  Export:   %s", truncate(a.opts.ExportDir, 36)),
	)

	configBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	// Presets
	var presetLines []string
	for i, p := range a.opts.Presets.All() {
		origin := "built-in"
		if i >= len(generation.Presets) {
			origin = "user"
		}
		presetLines = append(presetLines, fmt.Sprintf("  %-14s %s", truncate(p.Name, 14), styleSubtitle.Render(origin)))
	}
	if dir := a.opts.Presets.Dir(); dir != "" {
		presetLines = append(presetLines, "", styleSubtitle.Render("  Add presets in: "+truncate(dir, 30)))
	}

	presetTitle := styleSubtitle.Render("Style Presets")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, presetTitle))
	b.WriteString("\n\n")

	presetBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(presetLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, presetBox))
	b.WriteString("\n\n")

	hint := styleSubtitle.Render("Edit ~/.config/lexis/config.yaml or set LEXIS_PROVIDER / LEXIS_MODEL")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hint))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
