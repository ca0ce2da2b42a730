package llm

import (
	"context"
)

// Provider is the interface all LLM providers must implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a completion request and returns the full response
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// Format constrains the body of the model's reply.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// CompletionRequest represents a request to the LLM
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64

	// Format and Schema describe the reply. Schema is only honoured
	// with FormatJSON.
	Format Format
	Schema *Schema
}

// Message represents a chat message
type Message struct {
	Role    string
	Content string
}

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a simple completion request
func NewRequest(model string, systemPrompt, userPrompt string) *CompletionRequest {
	return &CompletionRequest{
		Model:  model,
		System: systemPrompt,
		Messages: []Message{
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// NewJSONRequest creates a request whose reply must be JSON matching schema.
func NewJSONRequest(model, systemPrompt, userPrompt string, schema *Schema, temperature float64) *CompletionRequest {
	req := NewRequest(model, systemPrompt, userPrompt)
	req.Format = FormatJSON
	req.Schema = schema
	req.Temperature = temperature
	return req
}
