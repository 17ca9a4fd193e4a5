package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/sozercan/health-agent/internal/analyzer"
	"github.com/sozercan/health-agent/internal/config"
	"github.com/sozercan/health-agent/internal/llm"
	"github.com/sozercan/health-agent/internal/loggen"
	"github.com/sozercan/health-agent/internal/logging"
	"github.com/sozercan/health-agent/internal/server"
)

func main() {
	cfg, err := config.LoadConfig(os.Getenv("HEALTH_AGENT_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logging.Setup(os.Stderr, cfg.Log)

	llmProvider, err := llm.NewProvider(&cfg.LLM)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	analyzer := analyzer.New(llmProvider, analyzer.SettingsFromConfig(cfg.LLM))

	srv := server.New(*cfg, analyzer, loggen.New())
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "provider", llmProvider.Name())
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
