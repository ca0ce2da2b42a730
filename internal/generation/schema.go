package generation

import "github.com/sant0-9/lexis/internal/llm"

func suggestionSchema() *llm.Schema {
	return llm.Object("",
		llm.Required("text", llm.String("The suggested text")),
		llm.Required("score", llm.Number("Relevance score between 0 and 1")),
	)
}

// ExpansionSchema describes the reply to Expand.
func ExpansionSchema() *llm.Schema {
	return llm.Object("Expanded query suggestions",
		llm.Required("query", llm.String("The original user query")),
		llm.Required("suggestions", llm.Array("Ranked expansions", suggestionSchema())),
	)
}

// ExpressionsSchema describes the reply to GenerateExpressions. Only the
// query is required.
func ExpressionsSchema() *llm.Schema {
	return llm.Object("Figures of speech grouped by category",
		llm.Required("query", llm.String("The original concept")),
		llm.Optional("metaphors", llm.Array("Metaphors", suggestionSchema())),
		llm.Optional("similes", llm.Array("Similes", suggestionSchema())),
		llm.Optional("personifications", llm.Array("Personifications", suggestionSchema())),
	)
}

// CompositionSchema describes the reply to GenerateText.
func CompositionSchema() *llm.Schema {
	return llm.Object("Generated prose",
		llm.Required("text", llm.String("The generated text")),
	)
}
