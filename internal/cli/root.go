// Package cli implements the healthctl command line client.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sozercan/health-agent/internal/config"
	"github.com/sozercan/health-agent/internal/llm"
)

// ProviderFactory builds the inference provider from configuration.
type ProviderFactory func(cfg *config.LLMConfig) (llm.Provider, error)

type rootOptions struct {
	configFile string
	output     string
	verbose    bool
}

// NewRootCmd wires every healthctl subcommand. newProvider is normally llm.NewProvider.
func NewRootCmd(newProvider ProviderFactory) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "healthctl",
		Short: "Analyze application error logs with an LLM",
		Long: `healthctl sends application error logs to an LLM and prints the
error, root cause, solution and severity it finds.

Examples:
  # Analyze a log file
  healthctl analyze /var/log/app/error.log

  # Analyze logs piped on stdin as JSON
  kubectl logs deploy/api | healthctl analyze - -o json

  # Try it with a synthetic sample
  healthctl generate-logs`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging on stderr")

	cmd.AddCommand(NewAnalyzeCmd(opts, newProvider))
	cmd.AddCommand(NewGenerateLogsCmd(opts))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
