package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sant0-9/lexis/internal/llm"
	"github.com/sant0-9/lexis/internal/logging"
)

func newTestClient(replies ...llm.ScriptedReply) (*Client, *llm.Scripted) {
	p := llm.NewScripted(replies...)
	return NewClient(p, "test-model", logging.Discard()), p
}

func TestExpandRanksByScore(t *testing.T) {
	c, p := newTestClient(llm.ScriptedReply{Content: `{
		"query": "sadness",
		"suggestions": [
			{"text": "grief", "score": 0.6},
			{"text": "melancholy", "score": 0.9}
		]
	}`})

	res, err := c.Expand(context.Background(), "sadness")
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if len(res.Suggestions) != 2 || res.Suggestions[0].Text != "melancholy" || res.Suggestions[1].Text != "grief" {
		t.Fatalf("Suggestions = %+v", res.Suggestions)
	}

	reqs := p.Requests()
	if len(reqs) != 1 {
		t.Fatalf("provider calls = %d", len(reqs))
	}
	req := reqs[0]
	if req.Temperature != 0.3 {
		t.Errorf("Temperature = %v", req.Temperature)
	}
	if req.Format != llm.FormatJSON || req.Schema == nil {
		t.Errorf("Format = %v, Schema = %v", req.Format, req.Schema)
	}
	if req.Messages[0].Content != `Expand the query: "sadness"` {
		t.Errorf("user content = %q", req.Messages[0].Content)
	}
	if req.Model != "test-model" {
		t.Errorf("Model = %q", req.Model)
	}
}

func TestGenerateExpressions(t *testing.T) {
	c, p := newTestClient(llm.ScriptedReply{Content: `{
		"query": "a busy city",
		"metaphors": [
			{"text": "The city is a beehive.", "score": 0.5},
			{"text": "The city is a living circuit board.", "score": 0.8}
		],
		"similes": [{"text": "Streets hum like a wire.", "score": 0.7}]
	}`})

	res, err := c.GenerateExpressions(context.Background(), "a busy city", "Vibrant")
	if err != nil {
		t.Fatalf("GenerateExpressions() error: %v", err)
	}
	if res.Metaphors[0].Score != 0.8 {
		t.Errorf("first metaphor = %+v", res.Metaphors[0])
	}
	if len(res.Personifications) != 0 {
		t.Errorf("Personifications = %+v", res.Personifications)
	}

	req := p.Requests()[0]
	if req.Temperature != 0.8 {
		t.Errorf("Temperature = %v", req.Temperature)
	}
	if !strings.Contains(req.Messages[0].Content, "Tone: Vibrant") {
		t.Errorf("user content = %q", req.Messages[0].Content)
	}
	if got := strings.Join(req.Schema.Required, ","); got != "query" {
		t.Errorf("Required = %s", got)
	}
}

func TestGenerateExpressionsDefaultsTone(t *testing.T) {
	c, p := newTestClient(llm.ScriptedReply{Content: `{"query":"rain"}`})
	res, err := c.GenerateExpressions(context.Background(), "rain", "  ")
	if err != nil {
		t.Fatalf("GenerateExpressions() error: %v", err)
	}
	if !IsEmpty(res) {
		t.Errorf("expected empty result, got %+v", res)
	}
	if !strings.Contains(p.Requests()[0].Messages[0].Content, "Tone: Neutral") {
		t.Errorf("user content = %q", p.Requests()[0].Messages[0].Content)
	}
}

func TestGenerateText(t *testing.T) {
	c, p := newTestClient(llm.ScriptedReply{Content: "```json\n{\"text\": \"The sea was calm.\"}\n```"})

	style := Presets[0].Config
	text, err := c.GenerateText(context.Background(), "an old fisherman", style, "")
	if err != nil {
		t.Fatalf("GenerateText() error: %v", err)
	}
	if text != "The sea was calm." {
		t.Errorf("text = %q", text)
	}

	req := p.Requests()[0]
	if !strings.Contains(req.System, "Sentence complexity: low") {
		t.Errorf("style not rendered into instruction: %q", req.System)
	}
	if !strings.Contains(req.Messages[0].Content, "Form: short story") {
		t.Errorf("user content = %q", req.Messages[0].Content)
	}
	if req.MaxTokens != textMaxTokens {
		t.Errorf("MaxTokens = %d", req.MaxTokens)
	}
}

func TestGenerateTextRejectsInvalidStyle(t *testing.T) {
	c, p := newTestClient()
	style := DefaultStyle()
	style.LexicalDensity = "dense"

	_, err := c.GenerateText(context.Background(), "x", style, "poem")
	if !errors.Is(err, ErrInvalidStyle) {
		t.Fatalf("err = %v", err)
	}
	if p.Calls() != 0 {
		t.Errorf("provider called %d times", p.Calls())
	}
}

func TestEmptyInputSkipsProvider(t *testing.T) {
	c, p := newTestClient()
	ctx := context.Background()

	if _, err := c.Expand(ctx, "   "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expand err = %v", err)
	}
	if _, err := c.GenerateExpressions(ctx, "\t", "Calm"); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("GenerateExpressions err = %v", err)
	}
	if _, err := c.GenerateText(ctx, "", DefaultStyle(), ""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("GenerateText err = %v", err)
	}
	if p.Calls() != 0 {
		t.Errorf("provider called %d times", p.Calls())
	}
}

func TestFailuresCollapseToGenerationFailed(t *testing.T) {
	tests := []struct {
		name  string
		reply llm.ScriptedReply
	}{
		{name: "transport", reply: llm.ScriptedReply{Err: errors.New("connection refused")}},
		{name: "not json", reply: llm.ScriptedReply{Content: "Sure! Here are some ideas."}},
		{name: "missing suggestions", reply: llm.ScriptedReply{Content: `{"query":"x"}`}},
		{name: "missing query", reply: llm.ScriptedReply{Content: `{"suggestions":[]}`}},
		{name: "score too high", reply: llm.ScriptedReply{Content: `{"query":"x","suggestions":[{"text":"a","score":1.5}]}`}},
		{name: "negative score", reply: llm.ScriptedReply{Content: `{"query":"x","suggestions":[{"text":"a","score":-0.1}]}`}},
		{name: "empty text", reply: llm.ScriptedReply{Content: `{"query":"x","suggestions":[{"text":" ","score":0.5}]}`}},
		{name: "missing score", reply: llm.ScriptedReply{Content: `{"query":"x","suggestions":[{"text":"a"}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, p := newTestClient(tt.reply)
			res, err := c.Expand(context.Background(), "x")
			if err != ErrGenerationFailed {
				t.Fatalf("err = %v, want ErrGenerationFailed", err)
			}
			if res != nil {
				t.Errorf("partial result returned: %+v", res)
			}
			if p.Calls() != 1 {
				t.Errorf("provider called %d times", p.Calls())
			}
		})
	}
}

func TestEmptySuggestionsIsNotAFailure(t *testing.T) {
	c, _ := newTestClient(llm.ScriptedReply{Content: `{"query":"x","suggestions":[]}`})
	res, err := c.Expand(context.Background(), "x")
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if !IsEmpty(res) {
		t.Errorf("expected empty result")
	}
}

func TestGenerateTextRequiresText(t *testing.T) {
	c, _ := newTestClient(llm.ScriptedReply{Content: `{"text":""}`})
	if _, err := c.GenerateText(context.Background(), "x", DefaultStyle(), "poem"); err != ErrGenerationFailed {
		t.Errorf("err = %v", err)
	}
}
