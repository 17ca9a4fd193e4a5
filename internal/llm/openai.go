package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/sozercan/health-agent/internal/config"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1/"
	OpenAIBaseURL = "https://api.openai.com/v1/"
)

// OpenAI talks to any OpenAI-compatible chat completions endpoint. Groq is
// the default deployment.
type OpenAI struct {
	client   *openai.Client
	name     string
	defaults Options
}

func NewOpenAI(cfg *config.LLMConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	name := cfg.Provider
	if name == "" {
		name = config.ProviderGroq
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = GroqBaseURL
		if name == config.ProviderOpenAI {
			baseURL = OpenAIBaseURL
		}
	}
	// Request paths are resolved relative to the base URL.
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	slog.Info("Created OpenAI-compatible client", "provider", name, "base_url", baseURL, "model", cfg.Model)

	return &OpenAI{
		client: client,
		name:   name,
		defaults: Options{
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		},
	}, nil
}

func (o *OpenAI) Name() string {
	return o.name
}

func (o *OpenAI) Complete(ctx context.Context, system, user string, opts ...Option) (*Response, error) {
	options := applyOptions(o.defaults, opts)

	params := openai.ChatCompletionNewParams{
		Model: openai.F(openai.ChatModel(options.Model)),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		}),
		Temperature: openai.F(options.Temperature),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.F(options.MaxTokens)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s completion request failed: %w", o.name, err)
	}

	// Tool-call and refusal replies carry a null content field
	if len(resp.Choices) == 0 || resp.Choices[0].Message.JSON.Content.IsNull() {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
