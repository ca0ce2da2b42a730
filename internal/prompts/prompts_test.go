package prompts

import (
	"strings"
	"testing"
)

func TestEmbeddedInstructions(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "expansion", got: ExpansionSystem(), want: "top 5-10 ranked"},
		{name: "expressions", got: ExpressionsSystem(), want: "3 to 5 items"},
		{name: "composition", got: CompositionSystem("- Tone: dry"), want: "- Tone: dry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("instruction missing %q", tt.want)
			}
			if tt.got != strings.TrimSpace(tt.got) {
				t.Error("instruction not trimmed")
			}
		})
	}

	if strings.Contains(CompositionSystem("x"), "{{STYLE}}") {
		t.Error("style placeholder not substituted")
	}
}

func TestExpansionUserQuotesQuery(t *testing.T) {
	if got := ExpansionUser("sadness"); got != `Expand the query: "sadness"` {
		t.Errorf("ExpansionUser() = %q", got)
	}
}
