package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	initNameFlag  string
	initHostFlag  string
	initPathFlag  string
	initKindFlag  string
	doctorTimeout string
)

// monitorCmd is an explicit alias for the default behavior of the bare
// jobdash invocation.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Start the monitoring dashboard",
	Long: `Start the TUI dashboard for all configured targets.

This is the default command: running jobdash with no arguments does the
same thing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand()
	},
}

// showCmd fetches and prints one target without starting the TUI
var showCmd = &cobra.Command{
	Use:   "show [target]",
	Short: "Fetch one target and print its series as text",
	Long: `Fetch a single target's log file, parse it, and print the resulting
series to stdout. Useful for checking a target definition or piping values
into other tools.

Examples:
  jobdash show water-opt
  jobdash show butane-qff`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCommand(args[0])
	},
}

// initCmd creates the config file and adds targets interactively
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and add a target",
	Long: `Create ~/.config/jobdash/config.yaml if it does not exist and add a
monitoring target. Without flags this walks through an interactive form;
with --name, --host, --path, and --kind it adds the target directly.

Examples:
  jobdash init
  jobdash init --name water-opt --host cluster --path "~/opt/semp.out" --kind semp`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initNameFlag, initHostFlag, initPathFlag, initKindFlag)
	},
}

// editCmd opens the config file in the user's editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editCommand()
	},
}

// doctorCmd probes SSH connectivity to every configured host
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check SSH connectivity to configured hosts",
	Long: `Connect to each host referenced by the config and report latency.

Probes use your SSH agent or default identity files, the same auth that scp
uses when the dashboard fetches log files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(doctorTimeout)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate a completion script for your shell.

Examples:
  jobdash completion bash > /etc/bash_completion.d/jobdash
  jobdash completion zsh > "${fpath[1]}/_jobdash"
  jobdash completion fish > ~/.config/fish/completions/jobdash.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

func init() {
	// init command flags
	initCmd.Flags().StringVar(&initNameFlag, "name", "", "target name")
	initCmd.Flags().StringVar(&initHostFlag, "host", "", "SSH host or alias")
	initCmd.Flags().StringVar(&initPathFlag, "path", "", "remote log file path")
	initCmd.Flags().StringVar(&initKindFlag, "kind", "", "log format kind (semp or pbqff)")

	// doctor command flags
	doctorCmd.Flags().StringVar(&doctorTimeout, "timeout", "", "per-host probe timeout (e.g., 5s, 2m)")

	// Register all commands
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
