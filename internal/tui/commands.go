package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/lexis/internal/export"
	"github.com/sant0-9/lexis/internal/generation"
	"github.com/sant0-9/lexis/internal/logging"
	"github.com/sant0-9/lexis/internal/session"
)

type providerReadyMsg struct{}
type providerErrorMsg struct{ error }

type expandDoneMsg struct {
	ticket session.Ticket
	result *generation.ExpansionResult
	err    error
}

type expressionsDoneMsg struct {
	ticket session.Ticket
	result *generation.CategorizedExpressionResult
	err    error
}

type composeDoneMsg struct {
	ticket session.Ticket
	result *generation.Composition
	err    error
}

type copyDoneMsg struct{ err error }

type exportDoneMsg struct {
	path string
	err  error
}

// submit starts a request for the current mode. Blank input shows the
// validation message; a submit while loading does nothing.
func (a *App) submit() tea.Cmd {
	st := a.state
	f := st.form()
	query := f.input(fieldQuery).Value()
	ticking := st.anyLoading()

	var (
		t   session.Ticket
		err error
		run tea.Cmd
	)

	switch st.mode {
	case modeExpand:
		if t, err = st.expand.Submit(query); err == nil {
			run = a.expandCmd(t)
		}

	case modeExpressions:
		tone := f.input(fieldTone).Value()
		if t, err = st.expressions.Submit(query); err == nil {
			run = a.expressionsCmd(t, tone)
		}

	case modeCompose:
		style := a.previewStyle()
		if err = style.Validate(); err != nil {
			f.validation = err.Error()
			return nil
		}
		formName := f.input(fieldForm).Value()
		if t, err = st.compose.Submit(query); err == nil {
			run = a.composeCmd(t, style, formName)
		}
	}

	switch {
	case errors.Is(err, session.ErrEmptyInput):
		f.validation = err.Error()
		return nil
	case err != nil:
		return nil
	}

	f.validation = ""
	st.notice = ""
	f.blur()
	a.log.Info("request submitted",
		logging.FieldMode, st.mode.String(),
		logging.FieldRequestID, t.ID,
	)
	if ticking {
		return run
	}
	return tea.Batch(run, st.spinner.Tick)
}

func (a *App) expandCmd(t session.Ticket) tea.Cmd {
	client := a.opts.Client
	ctx := logging.WithRequestID(a.ctx, t.ID)
	return func() tea.Msg {
		res, err := client.Expand(ctx, t.Input)
		return expandDoneMsg{ticket: t, result: res, err: err}
	}
}

func (a *App) expressionsCmd(t session.Ticket, tone string) tea.Cmd {
	client := a.opts.Client
	ctx := logging.WithRequestID(a.ctx, t.ID)
	return func() tea.Msg {
		res, err := client.GenerateExpressions(ctx, t.Input, tone)
		return expressionsDoneMsg{ticket: t, result: res, err: err}
	}
}

func (a *App) composeCmd(t session.Ticket, style generation.StyleConfig, formName string) tea.Cmd {
	client := a.opts.Client
	ctx := logging.WithRequestID(a.ctx, t.ID)
	formName = strings.TrimSpace(formName)
	if formName == "" {
		formName = generation.DefaultForm
	}
	return func() tea.Msg {
		text, err := client.GenerateText(ctx, t.Input, style, formName)
		if err != nil {
			return composeDoneMsg{ticket: t, err: err}
		}
		return composeDoneMsg{ticket: t, result: &generation.Composition{
			Prompt: t.Input,
			Form:   formName,
			Style:  style,
			Text:   text,
		}}
	}
}

// document returns the populated result of the current mode.
func (a *App) document() (export.Document, error) {
	st := a.state
	switch st.mode {
	case modeExpand:
		if r, ok := st.expand.Result(); ok && !generation.IsEmpty(r) {
			return export.FromRanked("Query Expansions", st.expand.Input(), r), nil
		}
	case modeExpressions:
		if r, ok := st.expressions.Result(); ok && !generation.IsEmpty(r) {
			return export.FromRanked("Literary Expressions", st.expressions.Input(), r), nil
		}
	case modeCompose:
		if r, ok := st.compose.Result(); ok && r != nil {
			return export.FromComposition(r, st.formatting), nil
		}
	}
	return export.Document{}, errNoResult
}

func (a *App) copyResult() tea.Cmd {
	doc, err := a.document()
	if err != nil {
		a.state.setNotice(err.Error(), true)
		return nil
	}
	cb := a.opts.Clipboard
	return func() tea.Msg {
		return copyDoneMsg{err: export.Copy(cb, doc)}
	}
}

func (a *App) exportResult() tea.Cmd {
	doc, err := a.document()
	if err != nil {
		a.state.setNotice(err.Error(), true)
		return nil
	}
	dir := a.opts.ExportDir
	return func() tea.Msg {
		path, err := export.SavePDF(dir, doc)
		return exportDoneMsg{path: path, err: err}
	}
}
