package llm

// CustomProvider talks to any OpenAI-compatible endpoint. Support for
// json_schema varies between servers, so it asks for json_object.
type CustomProvider struct {
	*OpenAIProvider
}

func NewCustomProvider(baseURL, apiKey, model string) *CustomProvider {
	return &CustomProvider{
		OpenAIProvider: newOpenAICompatible("custom", baseURL, apiKey, model, jsonObject),
	}
}
