package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sozercan/health-agent/internal/analyzer"
	"github.com/sozercan/health-agent/internal/config"
	"github.com/sozercan/health-agent/internal/logging"
	"github.com/sozercan/health-agent/internal/output"
)

// ErrAnalysisFailed is returned after a failure result has been rendered.
var ErrAnalysisFailed = errors.New("analysis failed")

func NewAnalyzeCmd(opts *rootOptions, newProvider ProviderFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [FILE|-]",
		Short: "Analyze error logs from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, newProvider, args)
		},
	}
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions, newProvider ProviderFactory, args []string) error {
	format, err := output.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogging(cmd.ErrOrStderr(), cfg.Log, opts.verbose)

	logs, err := readLogs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	provider, err := newProvider(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	a := analyzer.New(provider, analyzer.SettingsFromConfig(cfg.LLM))

	s := newSpinner(cmd.ErrOrStderr(), spinnerSuffix(provider.Name(), a.Settings()))
	if s != nil {
		s.Start()
	}
	result := a.Analyze(cmd.Context(), logs)
	if s != nil {
		s.Stop()
	}

	if err := output.New(cmd.OutOrStdout(), format).WriteResult(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if !result.Success() {
		return ErrAnalysisFailed
	}
	return nil
}

func spinnerSuffix(provider string, settings analyzer.Settings) string {
	return fmt.Sprintf(" Analyzing with %s (%s)...", provider, settings.Model)
}

func readLogs(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading log file: %w", err)
	}
	return string(data), nil
}

// newSpinner returns nil unless w is an interactive terminal.
func newSpinner(w io.Writer, suffix string) *spinner.Spinner {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = suffix
	return s
}

// setupLogging keeps the CLI quiet unless asked otherwise.
func setupLogging(w io.Writer, cfg config.LogConfig, verbose bool) {
	if !verbose {
		cfg.Level = "error"
	}
	logging.Setup(w, cfg)
}
