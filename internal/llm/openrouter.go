package llm

type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(apiKey, model string) *OpenRouterProvider {
	if model == "" {
		model = "google/gemini-2.5-flash"
	}
	return &OpenRouterProvider{
		OpenAIProvider: newOpenAICompatible("openrouter", "https://openrouter.ai/api/v1", apiKey, model, jsonSchema),
	}
}
