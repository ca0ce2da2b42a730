package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	NeedsAPIKey  bool
	KeyEnv       string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "gemini",
		Name:         "Gemini",
		Description:  "Native JSON schema output",
		NeedsAPIKey:  true,
		KeyEnv:       "GEMINI_API_KEY",
		SignupURL:    "https://aistudio.google.com/apikey",
		Models:       []string{"gemini-2.5-flash", "gemini-2.5-pro"},
		DefaultModel: "gemini-2.5-flash",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "Structured outputs",
		NeedsAPIKey:  true,
		KeyEnv:       "OPENAI_API_KEY",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o", "gpt-4o-mini"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Description:  "Claude, great writing",
		NeedsAPIKey:  true,
		KeyEnv:       "ANTHROPIC_API_KEY",
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022"},
		DefaultModel: "claude-3-5-sonnet-20241022",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		Description:  "Very fast, cheap",
		NeedsAPIKey:  true,
		KeyEnv:       "GROQ_API_KEY",
		SignupURL:    "https://console.groq.com/keys",
		Models:       []string{"llama-3.3-70b-versatile", "llama-3.1-8b-instant"},
		DefaultModel: "llama-3.3-70b-versatile",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		NeedsAPIKey:  true,
		KeyEnv:       "OPENROUTER_API_KEY",
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"google/gemini-2.5-flash", "openai/gpt-4o", "anthropic/claude-3.5-sonnet"},
		DefaultModel: "google/gemini-2.5-flash",
	},
	{
		ID:           "ollama",
		Name:         "Ollama",
		Description:  "Local, free, private",
		NeedsAPIKey:  false,
		Models:       []string{"llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel: "llama3.1:8b",
	},
	{
		ID:          "custom",
		Name:        "Custom",
		Description: "Any OpenAI-compatible endpoint",
		NeedsAPIKey: false,
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
