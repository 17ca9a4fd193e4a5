package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sozercan/health-agent/apimodels"
	"github.com/sozercan/health-agent/internal/config"
	"github.com/sozercan/health-agent/internal/llm"
)

const (
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 512
)

// Settings are fixed for the lifetime of an Analyzer.
type Settings struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

func DefaultSettings() Settings {
	return Settings{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// SettingsFromConfig fills an empty model or token limit with the defaults.
// Temperature is taken as given because LoadConfig already defaults it, so an
// explicit 0 survives. A zero-value config yields DefaultSettings.
func SettingsFromConfig(cfg config.LLMConfig) Settings {
	if cfg == (config.LLMConfig{}) {
		return DefaultSettings()
	}

	s := DefaultSettings()
	s.Temperature = cfg.Temperature
	if cfg.Model != "" {
		s.Model = cfg.Model
	}
	if cfg.MaxTokens > 0 {
		s.MaxTokens = cfg.MaxTokens
	}
	return s
}

type Analyzer struct {
	llmProvider llm.Provider
	settings    Settings
	now         func() time.Time
}

type AnalyzerOption func(*Analyzer)

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) { a.now = now }
}

func New(llmProvider llm.Provider, settings Settings, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		llmProvider: llmProvider,
		settings:    settings,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Settings returns the immutable completion settings.
func (a *Analyzer) Settings() Settings {
	return a.settings
}

// Analyze sends logs to the provider and packages the parsed reply. It never
// returns an error: every failure becomes a result with status "error".
func (a *Analyzer) Analyze(ctx context.Context, logs string) (result apimodels.AnalysisResult) {
	slog.Info("Starting analysis", "provider", a.llmProvider.Name(), "model", a.settings.Model, "log_bytes", len(logs))
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Analysis panicked", "panic", r)
			result = apimodels.NewFailure(a.now(), fmt.Errorf("analysis failed: %v", r))
		}
	}()

	resp, err := a.llmProvider.Complete(ctx, SystemPrompt, BuildUserPrompt(logs),
		llm.WithModel(a.settings.Model),
		llm.WithTemperature(a.settings.Temperature),
		llm.WithMaxTokens(a.settings.MaxTokens),
	)
	if err != nil {
		slog.Error("LLM analysis failed", "error", err)
		return apimodels.NewFailure(a.now(), err)
	}

	parsed := ParseResponse(resp.Content)
	slog.Debug("Parsed model reply", "severity", parsed.Severity)

	model := resp.Model
	if model == "" {
		model = a.settings.Model
	}

	slog.Info("Analysis complete", "severity", parsed.Severity, "tokens", resp.Usage.TotalTokens)
	return apimodels.NewSuccess(a.now(), parsed, resp.Content, model, a.llmProvider.Name(), apimodels.AnalysisMetadata{
		Duration:   time.Since(startTime).String(),
		TokensUsed: resp.Usage.TotalTokens,
	})
}
