// Package llm wraps the text-completion providers used for log analysis.
package llm

import (
	"context"
	"errors"
)

type Provider interface {
	// Complete sends one system and one user instruction and returns the
	// model's reply. It makes exactly one request; there is no retry.
	Complete(ctx context.Context, system, user string, opts ...Option) (*Response, error)

	// Name identifies the provider in analysis results (e.g. "groq").
	Name() string
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(o *Options) { o.Temperature = t }
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}

var (
	// ErrMissingAPIKey is returned by constructors of providers that need a credential.
	ErrMissingAPIKey = errors.New("llm: api key is required")

	// ErrEmptyResponse means the provider answered without any completion text.
	ErrEmptyResponse = errors.New("llm: provider returned no completion")

	ErrUnknownProvider = errors.New("llm: unknown provider")
)

func applyOptions(defaults Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
