package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/lexis/internal/config"
	"github.com/sant0-9/lexis/internal/export"
	"github.com/sant0-9/lexis/internal/generation"
	"github.com/sant0-9/lexis/internal/logging"
	"github.com/sant0-9/lexis/internal/preset"
	"github.com/sant0-9/lexis/internal/session"
)

type view int

const (
	viewMain view = iota
	viewSettings
	viewHelp
)

// Options wires the application's collaborators.
type Options struct {
	Config    *config.Config
	Client    *generation.Client
	Presets   *preset.Index
	Clipboard export.Clipboard
	ExportDir string
	Logger    *slog.Logger

	// SkipPing disables the startup connectivity check.
	SkipPing bool
}

type App struct {
	ctx  context.Context
	opts Options
	log  *slog.Logger

	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(ctx context.Context, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = export.SystemClipboard{}
	}
	if opts.ExportDir == "" {
		opts.ExportDir = export.DownloadDir()
	}
	if opts.Presets == nil {
		// Without a directory the index holds just the built-ins.
		opts.Presets, _ = preset.NewIndex("", opts.Logger)
	}

	a := &App{
		ctx:   ctx,
		opts:  opts,
		log:   opts.Logger,
		view:  viewMain,
		state: newState(),
	}
	a.state.form().focused().Focus()
	return a
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize(), textinput.Blink}
	if !a.opts.SkipPing {
		cmds = append(cmds, a.pingProvider())
	}
	return tea.Batch(cmds...)
}

func (a *App) pingProvider() tea.Cmd {
	client := a.opts.Client
	parent := a.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}
		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.help.Width = msg.Width

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		a.log.Warn("provider ping failed", logging.FieldError, msg.Error())
		return a, nil

	case spinner.TickMsg:
		if !a.state.anyLoading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case expandDoneMsg:
		if msg.err != nil {
			a.settled(modeExpand, msg.ticket, a.state.expand.Reject(msg.ticket, msg.err))
		} else {
			a.settled(modeExpand, msg.ticket, a.state.expand.Resolve(msg.ticket, msg.result))
		}
		return a, a.refocus(modeExpand)

	case expressionsDoneMsg:
		if msg.err != nil {
			a.settled(modeExpressions, msg.ticket, a.state.expressions.Reject(msg.ticket, msg.err))
		} else {
			a.settled(modeExpressions, msg.ticket, a.state.expressions.Resolve(msg.ticket, msg.result))
		}
		return a, a.refocus(modeExpressions)

	case composeDoneMsg:
		if msg.err != nil {
			a.settled(modeCompose, msg.ticket, a.state.compose.Reject(msg.ticket, msg.err))
		} else {
			a.settled(modeCompose, msg.ticket, a.state.compose.Resolve(msg.ticket, msg.result))
		}
		return a, a.refocus(modeCompose)

	case copyDoneMsg:
		if msg.err != nil {
			a.log.Error("copy failed", logging.FieldError, msg.err.Error())
			a.state.setNotice("Copy failed: "+msg.err.Error(), true)
		} else {
			a.state.setNotice("Copied to clipboard", false)
		}
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.log.Error("pdf export failed", logging.FieldError, msg.err.Error())
			a.state.setNotice("Export failed: "+msg.err.Error(), true)
		} else {
			a.log.Info("pdf exported", logging.FieldPath, msg.path)
			a.state.setNotice("Saved "+msg.path, false)
		}
		return a, nil
	}

	if a.view != viewMain {
		return a, nil
	}

	// Inputs of a mode with a request in flight are disabled.
	if !a.state.loading(a.state.mode) {
		var cmd tea.Cmd
		in := a.state.form().focused()
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
		if a.state.mode == modeCompose {
			a.syncPreset()
		}
	}

	var cmd tea.Cmd
	a.state.viewport, cmd = a.state.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// syncPreset drops the preset name once the tone input no longer matches
// the preset's tone.
func (a *App) syncPreset() {
	st := a.state
	if st.presetName == "Custom" {
		return
	}
	p, ok := a.opts.Presets.Get(st.presetName)
	if !ok || p.Config.Tone != a.previewStyle().Tone {
		st.presetName = "Custom"
	}
}

// settled logs whether a response was applied to its session.
func (a *App) settled(m mode, t session.Ticket, applied bool) {
	if !applied {
		a.log.Debug("discarding stale response", logging.FieldMode, m.String(), logging.FieldRequestID, t.ID)
		return
	}
	if m == a.state.mode {
		a.state.viewport.GotoTop()
	}
}

// refocus re-enables the inputs of m once its request has settled.
func (a *App) refocus(m mode) tea.Cmd {
	if m != a.state.mode || a.state.loading(m) || a.view != viewMain {
		return nil
	}
	return a.state.form().focused().Focus()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}

	if a.view != viewMain {
		if key.Matches(msg, keys.Back) {
			a.view = viewMain
			return a.refocus(a.state.mode), true
		}
		return nil, true
	}

	st := a.state
	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Help) && st.form().focused().Value() == "":
		a.view = viewHelp
		return nil, true

	case key.Matches(msg, keys.Settings):
		a.view = viewSettings
		return nil, true

	case key.Matches(msg, keys.Mode):
		st.form().blur()
		st.mode = (st.mode + 1) % modeCount
		st.notice = ""
		st.viewport.GotoTop()
		return a.refocus(st.mode), true

	case key.Matches(msg, keys.Tab):
		if st.loading(st.mode) {
			return nil, true
		}
		st.form().focused().Blur()
		if msg.String() == "shift+tab" {
			st.form().next(-1)
		} else {
			st.form().next(1)
		}
		return st.form().focused().Focus(), true

	case key.Matches(msg, keys.Enter):
		return a.submit(), true

	case key.Matches(msg, keys.Copy):
		return a.copyResult(), true

	case key.Matches(msg, keys.Export):
		return a.exportResult(), true
	}

	if st.mode == modeCompose && !st.loading(modeCompose) {
		if cmd, ok := a.handleStyleKey(msg); ok {
			return cmd, true
		}
	}

	// A keystroke in the form clears the validation message.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace {
		st.form().validation = ""
	}
	return nil, false
}

func (a *App) handleStyleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	st := a.state
	switch {
	case key.Matches(msg, keys.Preset):
		if p, ok := a.opts.Presets.At(presetIndex(msg.String())); ok {
			st.applyPreset(p)
		}
	case key.Matches(msg, keys.Complexity):
		st.style.SentenceComplexity = st.style.SentenceComplexity.Next()
	case key.Matches(msg, keys.Density):
		st.style.LexicalDensity = st.style.LexicalDensity.Next()
	case key.Matches(msg, keys.Rhythm):
		st.style.PunctuationRhythm = st.style.PunctuationRhythm.Next()
	case key.Matches(msg, keys.Figurative):
		st.style.FigurativeFrequency = st.style.FigurativeFrequency.Next()
	case key.Matches(msg, keys.Font):
		st.formatting.Font = st.formatting.Font.Next()
		return nil, true
	case key.Matches(msg, keys.Align):
		st.formatting.Alignment = st.formatting.Alignment.Next()
		return nil, true
	default:
		return nil, false
	}

	if !key.Matches(msg, keys.Preset) {
		st.presetName = "Custom"
	}
	return nil, true
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderMain()
	}
}

// centerVertically places content in the middle of the screen
func (a *App) centerVertically(content string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

var errNoResult = errors.New("nothing to export yet")
