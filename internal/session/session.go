// Package session tracks the request/result lifecycle of one input form:
// at most one request is in flight, and only the latest request may settle
// the visible state.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	ValidationMessage = "Query cannot be empty."

	ExpandFailure      = "Failed to expand query. The model may be unavailable or the request was malformed. Please try again."
	ExpressionsFailure = "Failed to generate expressions. The model may be unavailable or the request was malformed. Please try again."
	TextFailure        = "Failed to generate text. The model may be unavailable or the request was malformed. Please try again."
)

var (
	ErrEmptyInput = errors.New(ValidationMessage)
	ErrBusy       = errors.New("a request is already in progress")
)

type State int

const (
	Initial State = iota
	Loading
	Populated
	Failed
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Loading:
		return "loading"
	case Populated:
		return "populated"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// View is what the presentation layer should draw.
type View int

const (
	ViewInitial View = iota
	ViewLoading
	ViewFailed
	ViewEmpty
	ViewPopulated
)

// Ticket identifies one submission.
type Ticket struct {
	ID    string
	Input string
}

// Session holds the single result/error slot for a stream of submissions.
type Session[T any] struct {
	mu sync.Mutex

	failure string
	isEmpty func(T) bool

	state   State
	current string
	input   string
	result  T
	errMsg  string
}

// New creates a session that reports failure on Reject. isEmpty decides
// whether a result counts as "no results"; nil treats every result as
// populated.
func New[T any](failure string, isEmpty func(T) bool) *Session[T] {
	return &Session[T]{failure: failure, isEmpty: isEmpty}
}

// Submit starts a request for input. Blank input returns ErrEmptyInput and
// a submission while loading returns ErrBusy; neither changes state.
func (s *Session[T]) Submit(input string) (Ticket, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Ticket{}, ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Loading {
		return Ticket{}, ErrBusy
	}

	var zero T
	s.result = zero
	s.errMsg = ""
	s.state = Loading
	s.input = input
	s.current = uuid.NewString()

	return Ticket{ID: s.current, Input: input}, nil
}

// Resolve stores result if t is the current ticket. It reports whether the
// result was applied.
func (s *Session[T]) Resolve(t Ticket, result T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settles(t) {
		return false
	}
	s.result = result
	s.state = Populated
	s.current = ""
	return true
}

// Reject records a failure if t is the current ticket. err is not shown;
// the session's fixed failure message is.
func (s *Session[T]) Reject(t Ticket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settles(t) {
		return false
	}
	s.errMsg = s.failure
	s.state = Failed
	s.current = ""
	return true
}

func (s *Session[T]) settles(t Ticket) bool {
	return s.state == Loading && t.ID != "" && t.ID == s.current
}

func (s *Session[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// InputsEnabled reports whether the form accepts edits and submission.
func (s *Session[T]) InputsEnabled() bool {
	return s.State() != Loading
}

// Result returns the populated result.
func (s *Session[T]) Result() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.state == Populated
}

// Error returns the failure message, or "" when not failed.
func (s *Session[T]) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Input returns the last accepted submission.
func (s *Session[T]) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

func (s *Session[T]) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Loading:
		return ViewLoading
	case Failed:
		return ViewFailed
	case Populated:
		if s.isEmpty != nil && s.isEmpty(s.result) {
			return ViewEmpty
		}
		return ViewPopulated
	}
	return ViewInitial
}
