package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sant0-9/lexis/internal/export"
	"github.com/sant0-9/lexis/internal/generation"
	"github.com/sant0-9/lexis/internal/session"
)

type mode int

const (
	modeExpand mode = iota
	modeExpressions
	modeCompose
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeExpand:
		return "Expand"
	case modeExpressions:
		return "Expressions"
	case modeCompose:
		return "Compose"
	}
	return ""
}

type field int

const (
	fieldQuery field = iota
	fieldTone
	fieldForm
)

// form holds the inputs of one mode in tab order.
type form struct {
	fields []field
	inputs map[field]*textinput.Model
	focus  int

	// validation is shown under the inputs after a blank submit
	validation string
}

func newInput(placeholder string, limit int) *textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 60
	in.Prompt = ""
	return &in
}

func (f *form) input(fd field) *textinput.Model {
	return f.inputs[fd]
}

func (f *form) focused() *textinput.Model {
	return f.inputs[f.fields[f.focus]]
}

func (f *form) next(delta int) {
	n := len(f.fields)
	f.focus = ((f.focus+delta)%n + n) % n
}

func (f *form) blur() {
	for _, in := range f.inputs {
		in.Blur()
	}
}

type state struct {
	mode  mode
	forms [modeCount]*form

	expand      *session.Session[*generation.ExpansionResult]
	expressions *session.Session[*generation.CategorizedExpressionResult]
	compose     *session.Session[*generation.Composition]

	style      generation.StyleConfig
	presetName string

	// formatting lays out composed text on screen and in exports
	formatting export.Formatting

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	// notice is a one-line outcome of copy/export
	notice      string
	noticeError bool

	providerReady bool
	providerError error
}

func newState() *state {
	s := &state{
		expand: session.New(session.ExpandFailure, func(r *generation.ExpansionResult) bool {
			return generation.IsEmpty(r)
		}),
		expressions: session.New(session.ExpressionsFailure, func(r *generation.CategorizedExpressionResult) bool {
			return generation.IsEmpty(r)
		}),
		compose:    session.New[*generation.Composition](session.TextFailure, nil),
		style:      generation.DefaultStyle(),
		presetName: "Custom",
		formatting: export.Formatting{Font: export.FontSerif, Alignment: export.AlignLeft},
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
	}
	s.spinner.Style = styleLogo

	s.forms[modeExpand] = &form{
		fields: []field{fieldQuery},
		inputs: map[field]*textinput.Model{
			fieldQuery: newInput("e.g., sadness, machine learning, climate change", 200),
		},
	}
	s.forms[modeExpressions] = &form{
		fields: []field{fieldQuery, fieldTone},
		inputs: map[field]*textinput.Model{
			fieldQuery: newInput("e.g., a busy city, the ocean at night", 200),
			fieldTone:  newInput("Neutral", 80),
		},
	}
	s.forms[modeCompose] = &form{
		fields: []field{fieldQuery, fieldForm, fieldTone},
		inputs: map[field]*textinput.Model{
			fieldQuery: newInput("What should the piece be about?", 500),
			fieldForm:  newInput(generation.DefaultForm, 40),
			fieldTone:  newInput("Neutral", 80),
		},
	}
	s.forms[modeCompose].input(fieldTone).SetValue(s.style.Tone)

	vp := viewport.New(70, 10)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}
	s.viewport = vp

	return s
}

func (s *state) form() *form {
	return s.forms[s.mode]
}

// loading reports whether the session behind m has a request in flight.
func (s *state) loading(m mode) bool {
	switch m {
	case modeExpand:
		return s.expand.State() == session.Loading
	case modeExpressions:
		return s.expressions.State() == session.Loading
	case modeCompose:
		return s.compose.State() == session.Loading
	}
	return false
}

func (s *state) anyLoading() bool {
	for m := mode(0); m < modeCount; m++ {
		if s.loading(m) {
			return true
		}
	}
	return false
}

func (s *state) view(m mode) session.View {
	switch m {
	case modeExpand:
		return s.expand.View()
	case modeExpressions:
		return s.expressions.View()
	default:
		return s.compose.View()
	}
}

func (s *state) failure(m mode) string {
	switch m {
	case modeExpand:
		return s.expand.Error()
	case modeExpressions:
		return s.expressions.Error()
	default:
		return s.compose.Error()
	}
}

// applyPreset copies a preset into the compose style and tone input.
func (s *state) applyPreset(p generation.Preset) {
	s.style = p.Config
	s.presetName = p.Name
	s.forms[modeCompose].input(fieldTone).SetValue(p.Config.Tone)
}

func (s *state) setNotice(msg string, isErr bool) {
	s.notice = msg
	s.noticeError = isErr
}
