package prompts

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed expansion.md
var expansion string

//go:embed expressions.md
var expressions string

//go:embed composition.md
var composition string

// ExpansionSystem returns the system instruction for query expansion.
func ExpansionSystem() string {
	return strings.TrimSpace(expansion)
}

// ExpressionsSystem returns the system instruction for figures of speech.
func ExpressionsSystem() string {
	return strings.TrimSpace(expressions)
}

// CompositionSystem returns the system instruction for styled prose with
// the rendered style parameters substituted in.
func CompositionSystem(style string) string {
	return strings.TrimSpace(strings.Replace(composition, "{{STYLE}}", strings.TrimSpace(style), 1))
}

// ExpansionUser wraps the query the way the expansion instruction expects.
func ExpansionUser(query string) string {
	return fmt.Sprintf("Expand the query: %q", query)
}

// ExpressionsUser wraps the concept and tone.
func ExpressionsUser(query, tone string) string {
	return fmt.Sprintf("Concept: %q\nTone: %s", query, tone)
}

// CompositionUser wraps the prompt and literary form.
func CompositionUser(prompt, form string) string {
	return fmt.Sprintf("Form: %s\nPrompt: %s", form, prompt)
}
