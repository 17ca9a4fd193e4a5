package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"github.com/sozercan/health-agent/internal/config"
)

// Ollama runs completions against a local Ollama server. No credential is needed.
type Ollama struct {
	client   *api.Client
	defaults Options
}

func NewOllama(cfg *config.LLMConfig) (*Ollama, error) {
	host := cfg.OllamaHost
	if cfg.BaseURL != "" {
		host = cfg.BaseURL
	}
	if host == "" {
		return nil, errors.New("ollama host cannot be empty")
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	slog.Info("Created Ollama client", "host", host, "model", cfg.Model)

	return &Ollama{
		client: api.NewClient(base, http.DefaultClient),
		defaults: Options{
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		},
	}, nil
}

func (o *Ollama) Name() string {
	return config.ProviderOllama
}

func (o *Ollama) Complete(ctx context.Context, system, user string, opts ...Option) (*Response, error) {
	options := applyOptions(o.defaults, opts)

	stream := false
	req := &api.ChatRequest{
		Model: options.Model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": options.Temperature,
		},
	}
	if options.MaxTokens > 0 {
		req.Options["num_predict"] = options.MaxTokens
	}

	var (
		response api.ChatResponse
		received bool
	)
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		response = resp
		received = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama completion request failed: %w", err)
	}
	if !received {
		return nil, ErrEmptyResponse
	}

	prompt := int64(response.PromptEvalCount)
	completion := int64(response.EvalCount)
	return &Response{
		Content: response.Message.Content,
		Model:   response.Model,
		Usage: Usage{
			PromptTokens:     prompt,
			CompletionTokens: completion,
			TotalTokens:      prompt + completion,
		},
	}, nil
}
