package llm

import (
	"fmt"
	"strings"

	"github.com/sozercan/health-agent/internal/config"
)

// NewProvider builds the provider selected by cfg.Provider.
func NewProvider(cfg *config.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", config.ProviderGroq, config.ProviderOpenAI:
		p, err := NewOpenAI(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.ProviderOllama:
		p, err := NewOllama(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: groq, openai, ollama)", ErrUnknownProvider, cfg.Provider)
	}
}
