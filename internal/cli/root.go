package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag holds the --config persistent flag value.
var configFlag string

// rootCmd is the base command. Running jobdash with no subcommand starts the
// monitoring dashboard.
var rootCmd = &cobra.Command{
	Use:   "jobdash",
	Short: "Live dashboard for long-running remote computational jobs",
	Long: `jobdash watches log files of long-running jobs on remote machines,
parses them into numeric series, and plots them live in your terminal.

Targets are defined in ~/.config/jobdash/config.yaml (see 'jobdash init').
Each target names a remote host, a log file path, and a format kind; jobdash
fetches each file over scp on its own interval and redraws the dashboard.

Examples:
  jobdash                    # start the dashboard
  jobdash show water-opt     # fetch and print one target, no TUI
  jobdash doctor             # check SSH connectivity to configured hosts`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default ~/.config/jobdash/config.yaml)")
}

// Config returns the value of the --config flag.
func Config() string {
	return configFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
