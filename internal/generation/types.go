// Package generation builds model requests for query expansion, figures of
// speech and styled prose, and turns the model's JSON replies into ranked
// results.
package generation

// Suggestion is a single candidate text with a relevance score in [0,1].
// The score is assigned by the model and treated as opaque.
type Suggestion struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// ExpansionResult is the reply to Expand.
type ExpansionResult struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Categories presents the result as a single titled list.
func (r *ExpansionResult) Categories() []Category {
	return []Category{{Title: "Expansions", Items: r.Suggestions}}
}

// CategorizedExpressionResult is the reply to GenerateExpressions. A
// category the model omits is empty.
type CategorizedExpressionResult struct {
	Query            string       `json:"query"`
	Metaphors        []Suggestion `json:"metaphors"`
	Similes          []Suggestion `json:"similes"`
	Personifications []Suggestion `json:"personifications"`
}

func (r *CategorizedExpressionResult) Categories() []Category {
	return []Category{
		{Title: "Metaphors", Native: "은유법", Items: r.Metaphors},
		{Title: "Similes", Native: "직유법", Items: r.Similes},
		{Title: "Personifications", Native: "활유법", Items: r.Personifications},
	}
}

// Category is a titled, ranked list of suggestions. Native is the Korean
// rhetorical term, when there is one.
type Category struct {
	Title  string
	Native string
	Items  []Suggestion
}

// Heading is the display title, e.g. "Metaphors (은유법)".
func (c Category) Heading() string {
	if c.Native == "" {
		return c.Title
	}
	return c.Title + " (" + c.Native + ")"
}

// Ranked is implemented by results made of score-bearing lists.
type Ranked interface {
	Categories() []Category
}

// IsEmpty reports whether every list in r is empty.
func IsEmpty(r Ranked) bool {
	for _, c := range r.Categories() {
		if len(c.Items) > 0 {
			return false
		}
	}
	return true
}

// Composition is the reply to GenerateText, kept with the parameters that
// produced it so it can be exported.
type Composition struct {
	Prompt string
	Form   string
	Style  StyleConfig
	Text   string
}
