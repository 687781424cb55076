package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/ui"
	"github.com/rileyhilliard/jobdash/pkg/sshutil"
)

// initCommand creates the config file if needed and adds one target. With
// all four flags set it skips the interactive form.
func initCommand(name, host, path, kind string) error {
	configPath, err := initConfigPath()
	if err != nil {
		return err
	}

	target := config.TargetConfig{Name: name, Host: host, Path: path, Kind: kind}

	interactive := name == "" || host == "" || path == "" || kind == ""
	if interactive {
		if err := runInitForm(&target); err != nil {
			return err
		}
	}

	// Validate the target in the context of the existing config so
	// duplicate names are caught before anything is written.
	cfg := config.DefaultConfig()
	existing := false
	if _, statErr := os.Stat(configPath); statErr == nil {
		existing = true
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	cfg.Targets = append(cfg.Targets, target)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	probeTarget(target.Host, cfg)

	if existing {
		// Existing file: splice the target in, keeping any comments.
		if err := config.AddTarget(configPath, target); err != nil {
			return err
		}
	} else {
		if err := config.Write(cfg, configPath); err != nil {
			return err
		}
	}

	fmt.Printf("%s Added '%s' to %s\n\n", ui.SymbolSuccess, target.Name, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  jobdash           - start the dashboard")
	fmt.Printf("  jobdash show %s - fetch once without the TUI\n", target.Name)
	fmt.Println("  jobdash doctor    - check SSH connectivity")

	return nil
}

// initConfigPath resolves where init writes: the --config flag if given,
// otherwise the global location.
func initConfigPath() (string, error) {
	if Config() != "" {
		return Config(), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't determine your home directory",
			"Pass --config to choose the config location explicitly.")
	}
	return config.GlobalPath(home), nil
}

// runInitForm collects target fields interactively. Fields already set from
// flags are kept as the form's initial values.
func runInitForm(target *config.TargetConfig) error {
	hostSuggestions := sshConfigAliases()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target name").
				Description("How this job appears in the dashboard").
				Placeholder("water-opt").
				Value(&target.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("target name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("SSH host").
				Description("Hostname, user@host, or an alias from ~/.ssh/config").
				Placeholder("cluster or user@10.0.0.5").
				Suggestions(hostSuggestions).
				Value(&target.Host).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("SSH host is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Remote log file").
				Description("Path to the job's output file on the remote").
				Placeholder("~/projects/water/opt/semp.out").
				Value(&target.Path).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("remote path is required")
					}
					if !strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "~") {
						return fmt.Errorf("use an absolute path, or one starting with ~")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Log format").
				Options(
					huh.NewOption("semp (parameter optimization)", "semp"),
					huh.NewOption("pbqff (force field run)", "pbqff"),
				).
				Value(&target.Kind),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Pass --name, --host, --path, and --kind to skip the form.")
	}
	return nil
}

// sshConfigAliases returns host aliases from ~/.ssh/config for the form's
// suggestions. Errors just mean no suggestions.
func sshConfigAliases() []string {
	entries, err := sshutil.ParseSSHConfig()
	if err != nil {
		return nil
	}
	aliases := make([]string, 0, len(entries))
	for _, e := range entries {
		aliases = append(aliases, e.Alias)
	}
	return aliases
}

// probeTarget checks the host is reachable before saving. A failed probe
// only warns: jobs often live on machines that are down between runs.
func probeTarget(host string, cfg *config.Config) {
	fmt.Printf("Testing connection to %s...\n", host)
	latency, err := sshutil.Probe(host, cfg.ProbeTimeout)
	sshutil.CloseAgent()
	if err != nil {
		fmt.Printf("%s Couldn't reach '%s': %v\n", ui.SymbolFail, host, err)
		fmt.Println("Saving anyway; run 'jobdash doctor' once the host is up.")
		return
	}
	fmt.Printf("%s Connected (%s)\n", ui.SymbolSuccess, latency.Round(time.Millisecond))
}
