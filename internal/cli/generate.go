package cli

import (
	"github.com/spf13/cobra"

	"github.com/sozercan/health-agent/internal/loggen"
	"github.com/sozercan/health-agent/internal/output"
)

func NewGenerateLogsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate-logs",
		Short: "Print a synthetic error log sample",
		Long: `Print a canned error log sample from one of the Database, API, Memory,
Disk or Network scenarios. Pipe it into "healthctl analyze -" to try the
analyzer without real logs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			return output.New(cmd.OutOrStdout(), format).WriteLogs(loggen.New().Generate())
		},
	}
}
