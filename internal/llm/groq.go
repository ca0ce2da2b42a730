package llm

// GroqProvider uses Groq's OpenAI-compatible API in JSON object mode.
type GroqProvider struct {
	*OpenAIProvider
}

func NewGroqProvider(apiKey, model string) *GroqProvider {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	return &GroqProvider{
		OpenAIProvider: newOpenAICompatible("groq", "https://api.groq.com/openai/v1", apiKey, model, jsonObject),
	}
}
