package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sant0-9/lexis/internal/generation"
	"github.com/sant0-9/lexis/internal/llm"
	"github.com/sant0-9/lexis/internal/logging"
)

func newExpandSession() *Session[*generation.ExpansionResult] {
	return New(ExpandFailure, func(r *generation.ExpansionResult) bool {
		return generation.IsEmpty(r)
	})
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, in := range tests {
		t.Run("input="+strings.ReplaceAll(in, "\n", `\n`), func(t *testing.T) {
			s := newExpandSession()
			_, err := s.Submit(in)
			if !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("err = %v", err)
			}
			if err.Error() != "Query cannot be empty." {
				t.Errorf("message = %q", err.Error())
			}
			if s.State() != Initial || s.View() != ViewInitial {
				t.Errorf("state changed to %s", s.State())
			}
		})
	}
}

func TestBlankInputKeepsPreviousResult(t *testing.T) {
	s := newExpandSession()
	tk, _ := s.Submit("rain")
	s.Resolve(tk, &generation.ExpansionResult{Suggestions: []generation.Suggestion{{Text: "drizzle", Score: 0.5}}})

	if _, err := s.Submit(" "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v", err)
	}
	if s.View() != ViewPopulated {
		t.Errorf("View() = %v", s.View())
	}
}

func TestLifecycle(t *testing.T) {
	s := newExpandSession()

	tk, err := s.Submit("  sadness ")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if tk.Input != "sadness" || tk.ID == "" {
		t.Errorf("ticket = %+v", tk)
	}
	if s.View() != ViewLoading || s.InputsEnabled() {
		t.Errorf("View() = %v, InputsEnabled() = %v", s.View(), s.InputsEnabled())
	}

	if _, err := s.Submit("again"); !errors.Is(err, ErrBusy) {
		t.Errorf("second Submit err = %v", err)
	}

	if !s.Resolve(tk, &generation.ExpansionResult{Query: "sadness", Suggestions: []generation.Suggestion{{Text: "grief", Score: 0.6}}}) {
		t.Fatal("Resolve() not applied")
	}
	if s.View() != ViewPopulated || !s.InputsEnabled() {
		t.Errorf("View() = %v", s.View())
	}

	tk2, err := s.Submit("joy")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if _, ok := s.Result(); ok {
		t.Error("previous result not cleared")
	}
	s.Reject(tk2, errors.New("dial tcp: refused"))
	if s.View() != ViewFailed {
		t.Errorf("View() = %v", s.View())
	}
	if s.Error() != ExpandFailure {
		t.Errorf("Error() = %q", s.Error())
	}
	if !s.InputsEnabled() {
		t.Error("inputs disabled after failure")
	}
}

func TestStaleTicketsAreDiscarded(t *testing.T) {
	s := newExpandSession()
	old, _ := s.Submit("first")
	s.Reject(old, errors.New("boom"))

	cur, _ := s.Submit("second")
	if s.Resolve(old, &generation.ExpansionResult{}) {
		t.Error("stale Resolve applied")
	}
	if s.Reject(Ticket{}, errors.New("x")) {
		t.Error("zero ticket applied")
	}
	if s.State() != Loading {
		t.Errorf("State() = %s", s.State())
	}
	if !s.Resolve(cur, &generation.ExpansionResult{}) {
		t.Error("current Resolve not applied")
	}
	if s.Resolve(cur, &generation.ExpansionResult{}) {
		t.Error("ticket settled twice")
	}
}

func TestAllEmptyCategoriesShowNoResults(t *testing.T) {
	s := New(ExpressionsFailure, func(r *generation.CategorizedExpressionResult) bool {
		return generation.IsEmpty(r)
	})
	tk, _ := s.Submit("silence")
	s.Resolve(tk, &generation.CategorizedExpressionResult{Query: "silence"})
	if s.View() != ViewEmpty {
		t.Errorf("View() = %v, want ViewEmpty", s.View())
	}
}

func TestTransportFailureThroughClient(t *testing.T) {
	p := llm.NewScripted(llm.ScriptedReply{Err: errors.New("503 service unavailable")})
	c := generation.NewClient(p, "m", logging.Discard())
	s := newExpandSession()

	tk, err := s.Submit("sadness")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	res, err := c.Expand(context.Background(), tk.Input)
	if err != nil {
		s.Reject(tk, err)
	} else {
		s.Resolve(tk, res)
	}

	if s.State() != Failed {
		t.Fatalf("State() = %s", s.State())
	}
	if s.Error() != "Failed to expand query. The model may be unavailable or the request was malformed. Please try again." {
		t.Errorf("Error() = %q", s.Error())
	}
	if p.Calls() != 1 {
		t.Errorf("provider calls = %d", p.Calls())
	}
}

func TestSubmitWhileLoadingMakesOneCall(t *testing.T) {
	p := llm.NewScripted(llm.ScriptedReply{Content: `{"query":"q","suggestions":[]}`})
	c := generation.NewClient(p, "m", logging.Discard())
	s := newExpandSession()

	calls := 0
	submit := func(in string) {
		tk, err := s.Submit(in)
		if err != nil {
			return
		}
		calls++
		_ = tk
	}
	submit("q")
	submit("q")
	submit("q")
	if calls != 1 {
		t.Fatalf("accepted %d submissions", calls)
	}

	if _, err := c.Expand(context.Background(), "q"); err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if p.Calls() != 1 {
		t.Errorf("provider calls = %d", p.Calls())
	}
}

func TestNilIsEmptyTreatsResultsAsPopulated(t *testing.T) {
	s := New[string](TextFailure, nil)
	tk, _ := s.Submit("x")
	s.Resolve(tk, "")
	if s.View() != ViewPopulated {
		t.Errorf("View() = %v", s.View())
	}
}
