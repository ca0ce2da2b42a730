package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sant0-9/lexis/internal/llm"
	"github.com/sant0-9/lexis/internal/logging"
	"github.com/sant0-9/lexis/internal/prompts"
)

var (
	ErrEmptyInput = errors.New("input is empty")

	// ErrGenerationFailed is the only error callers see for transport,
	// decode and schema failures. Details are logged.
	ErrGenerationFailed = errors.New("generation failed")
)

const (
	expandTemperature      = 0.3
	expressionsTemperature = 0.8
	textTemperature        = 0.8

	textMaxTokens = 4096

	DefaultForm = "short story"
	DefaultTone = "Neutral"
)

// Client issues one model request per operation and decodes the reply.
type Client struct {
	provider llm.Provider
	model    string
	log      *slog.Logger
}

// NewClient creates a client. A nil logger uses slog.Default.
func NewClient(provider llm.Provider, model string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{provider: provider, model: model, log: log}
}

// Expand returns ranked query expansions for query.
func (c *Client) Expand(ctx context.Context, query string) (*ExpansionResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyInput
	}

	req := llm.NewJSONRequest(c.model,
		prompts.ExpansionSystem(),
		prompts.ExpansionUser(query),
		ExpansionSchema(),
		expandTemperature,
	)

	raw, err := c.complete(ctx, "expand", req)
	if err != nil {
		return nil, err
	}
	res, err := decodeExpansion(raw)
	if err != nil {
		return nil, c.fail(ctx, "expand", err, raw)
	}
	return res, nil
}

// GenerateExpressions returns metaphors, similes and personifications for
// query in the given tone.
func (c *Client) GenerateExpressions(ctx context.Context, query, tone string) (*CategorizedExpressionResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyInput
	}
	tone = strings.TrimSpace(tone)
	if tone == "" {
		tone = DefaultTone
	}

	req := llm.NewJSONRequest(c.model,
		prompts.ExpressionsSystem(),
		prompts.ExpressionsUser(query, tone),
		ExpressionsSchema(),
		expressionsTemperature,
	)

	raw, err := c.complete(ctx, "expressions", req)
	if err != nil {
		return nil, err
	}
	res, err := decodeExpressions(raw)
	if err != nil {
		return nil, c.fail(ctx, "expressions", err, raw)
	}
	return res, nil
}

// GenerateText writes prose for prompt in the given style and form.
func (c *Client) GenerateText(ctx context.Context, prompt string, style StyleConfig, form string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyInput
	}
	if err := style.Validate(); err != nil {
		return "", err
	}
	form = strings.TrimSpace(form)
	if form == "" {
		form = DefaultForm
	}

	req := llm.NewJSONRequest(c.model,
		prompts.CompositionSystem(style.Describe()),
		prompts.CompositionUser(prompt, form),
		CompositionSchema(),
		textTemperature,
	)
	req.MaxTokens = textMaxTokens

	raw, err := c.complete(ctx, "compose", req)
	if err != nil {
		return "", err
	}
	text, err := decodeComposition(raw)
	if err != nil {
		return "", c.fail(ctx, "compose", err, raw)
	}
	return text, nil
}

// Ping checks that the provider is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.provider.Ping(ctx)
}

func (c *Client) complete(ctx context.Context, op string, req *llm.CompletionRequest) (string, error) {
	start := time.Now()
	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		return "", c.fail(ctx, op, err, "")
	}

	logging.FromContext(ctx, c.log).Debug("completion received",
		logging.FieldMode, op,
		logging.FieldProvider, c.provider.Name(),
		logging.FieldModel, resp.Model,
		logging.FieldLatencyMS, time.Since(start).Milliseconds(),
		"total_tokens", resp.Usage.TotalTokens,
	)
	return resp.Content, nil
}

func (c *Client) fail(ctx context.Context, op string, err error, raw string) error {
	args := []any{
		logging.FieldMode, op,
		logging.FieldProvider, c.provider.Name(),
		logging.FieldModel, c.model,
		logging.FieldError, err.Error(),
	}
	if raw != "" {
		args = append(args, logging.FieldRaw, raw)
	}
	logging.FromContext(ctx, c.log).Error("generation failed", args...)
	return ErrGenerationFailed
}
