package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/rileyhilliard/jobdash/internal/doctor"
	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/ui"
	"github.com/rileyhilliard/jobdash/pkg/sshutil"
)

var (
	doctorOKStyle   = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	doctorWarnStyle = lipgloss.NewStyle().Foreground(ui.ColorWarning)
	doctorFailStyle = lipgloss.NewStyle().Foreground(ui.ColorError)
	doctorDimStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// doctorCommand runs the local environment checks, then probes every host
// the config references.
func doctorCommand(timeoutFlag string) error {
	local := []doctor.Check{
		&doctor.ConfigCheck{Explicit: Config()},
		&doctor.ScpCheck{},
		&doctor.AuthCheck{},
	}
	results := doctor.RunAll(local)

	// Host probes only make sense with a loadable config; a broken one
	// already failed the config check above.
	cfg, err := config.LoadOrDefault(Config())
	if err == nil {
		timeout, terr := probeTimeout(cfg, timeoutFlag)
		if terr != nil {
			return terr
		}
		defer sshutil.CloseAgent()

		var hostChecks []doctor.Check
		for _, host := range uniqueHosts(cfg) {
			hostChecks = append(hostChecks, &doctor.HostCheck{Host: host, Timeout: timeout})
		}
		results = append(results, doctor.RunAllParallel(hostChecks)...)
	}

	failures := 0
	for _, r := range results {
		printCheckResult(r)
		if r.Status == doctor.StatusFail {
			failures++
		}
	}

	fmt.Println()
	if failures > 0 {
		return errors.New(errors.ErrSSH,
			fmt.Sprintf("%d check(s) failed", failures),
			"See the messages above for what to fix.")
	}
	fmt.Println("All checks passed.")
	return nil
}

// probeTimeout resolves the per-host probe timeout from the flag or config.
func probeTimeout(cfg *config.Config, flag string) (time.Duration, error) {
	if flag == "" {
		return cfg.ProbeTimeout, nil
	}
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid timeout", flag),
			"Try something like 5s, 2m, or 500ms.")
	}
	return d, nil
}

func printCheckResult(r doctor.CheckResult) {
	var glyph string
	switch r.Status {
	case doctor.StatusPass:
		glyph = doctorOKStyle.Render(ui.SymbolSuccess)
	case doctor.StatusWarn:
		glyph = doctorWarnStyle.Render(ui.SymbolWarning)
	default:
		glyph = doctorFailStyle.Render(ui.SymbolFail)
	}

	fmt.Printf("  %s %s %s\n", glyph, r.Name, doctorDimStyle.Render(r.Message))
	if r.Suggestion != "" {
		fmt.Printf("    %s\n", doctorDimStyle.Render(r.Suggestion))
	}
}

// uniqueHosts returns the distinct hosts across all targets, sorted.
func uniqueHosts(cfg *config.Config) []string {
	seen := make(map[string]bool)
	var hosts []string
	for _, t := range cfg.Targets {
		if !seen[t.Host] {
			seen[t.Host] = true
			hosts = append(hosts, t.Host)
		}
	}
	sort.Strings(hosts)
	return hosts
}
