package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var errSchema = errors.New("reply does not match schema")

type wireSuggestion struct {
	Text  *string  `json:"text"`
	Score *float64 `json:"score"`
}

type wireExpansion struct {
	Query       *string           `json:"query"`
	Suggestions *[]wireSuggestion `json:"suggestions"`
}

type wireExpressions struct {
	Query            *string          `json:"query"`
	Metaphors        []wireSuggestion `json:"metaphors"`
	Similes          []wireSuggestion `json:"similes"`
	Personifications []wireSuggestion `json:"personifications"`
}

type wireComposition struct {
	Text *string `json:"text"`
}

// stripFences removes a surrounding markdown code fence, which some
// providers add even in JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}

func unmarshal(raw string, v any) error {
	if err := json.Unmarshal([]byte(stripFences(raw)), v); err != nil {
		return fmt.Errorf("%w: %v", errSchema, err)
	}
	return nil
}

func convertSuggestions(field string, in []wireSuggestion) ([]Suggestion, error) {
	out := make([]Suggestion, 0, len(in))
	for i, w := range in {
		switch {
		case w.Text == nil || strings.TrimSpace(*w.Text) == "":
			return nil, fmt.Errorf("%w: %s[%d].text missing", errSchema, field, i)
		case w.Score == nil:
			return nil, fmt.Errorf("%w: %s[%d].score missing", errSchema, field, i)
		case math.IsNaN(*w.Score) || *w.Score < 0 || *w.Score > 1:
			return nil, fmt.Errorf("%w: %s[%d].score %v out of range", errSchema, field, i, *w.Score)
		}
		out = append(out, Suggestion{Text: *w.Text, Score: *w.Score})
	}
	SortByScore(out)
	return out, nil
}

func decodeExpansion(raw string) (*ExpansionResult, error) {
	var w wireExpansion
	if err := unmarshal(raw, &w); err != nil {
		return nil, err
	}
	if w.Query == nil {
		return nil, fmt.Errorf("%w: query missing", errSchema)
	}
	if w.Suggestions == nil {
		return nil, fmt.Errorf("%w: suggestions missing", errSchema)
	}
	sugg, err := convertSuggestions("suggestions", *w.Suggestions)
	if err != nil {
		return nil, err
	}
	return &ExpansionResult{Query: *w.Query, Suggestions: sugg}, nil
}

func decodeExpressions(raw string) (*CategorizedExpressionResult, error) {
	var w wireExpressions
	if err := unmarshal(raw, &w); err != nil {
		return nil, err
	}
	if w.Query == nil {
		return nil, fmt.Errorf("%w: query missing", errSchema)
	}

	res := &CategorizedExpressionResult{Query: *w.Query}
	var err error
	if res.Metaphors, err = convertSuggestions("metaphors", w.Metaphors); err != nil {
		return nil, err
	}
	if res.Similes, err = convertSuggestions("similes", w.Similes); err != nil {
		return nil, err
	}
	if res.Personifications, err = convertSuggestions("personifications", w.Personifications); err != nil {
		return nil, err
	}
	return res, nil
}

func decodeComposition(raw string) (string, error) {
	var w wireComposition
	if err := unmarshal(raw, &w); err != nil {
		return "", err
	}
	if w.Text == nil || strings.TrimSpace(*w.Text) == "" {
		return "", fmt.Errorf("%w: text missing", errSchema)
	}
	return *w.Text, nil
}
