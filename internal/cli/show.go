package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/fetch"
	"github.com/rileyhilliard/jobdash/internal/logger"
	"github.com/rileyhilliard/jobdash/internal/series"
	"github.com/rileyhilliard/jobdash/pkg/sshutil"
)

// showCommand fetches one target and prints its parsed series.
func showCommand(name string) error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	target, err := findTarget(cfg, name)
	if err != nil {
		return err
	}

	kind, err := series.ParseKind(target.Kind)
	if err != nil {
		return err
	}

	tempDir, err := fetch.TempDir()
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)
	defer sshutil.CloseAgent()

	fetcher, err := fetch.New(tempDir, logger.NewEnvLogger("jobdash"))
	if err != nil {
		return err
	}

	raw, err := fetcher.Fetch(fetch.Spec{
		Name: target.Name,
		Host: target.Host,
		Path: target.Path,
		Kind: kind,
	})
	if err != nil {
		return err
	}

	parsed, err := series.Parse(kind, raw.Contents, raw.Companion)
	if err != nil {
		return err
	}

	fmt.Print(renderShow(target, raw, parsed))
	return nil
}

// findTarget looks up a target by name in the config.
func findTarget(cfg *config.Config, name string) (config.TargetConfig, error) {
	for _, t := range cfg.Targets {
		if t.Name == name {
			return t, nil
		}
	}
	names := make([]string, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		names = append(names, t.Name)
	}
	suggestion := "Add it with 'jobdash init' first."
	if len(names) > 0 {
		suggestion = "Configured targets: " + strings.Join(names, ", ")
	}
	return config.TargetConfig{}, errors.New(errors.ErrConfig,
		fmt.Sprintf("No target named '%s'", name), suggestion)
}

// renderShow formats the one-shot text report for a fetched target.
func renderShow(target config.TargetConfig, raw *fetch.Raw, parsed []series.Series) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) %s:%s\n", target.Name, target.Kind, target.Host, target.Path)
	if !raw.LastModified.IsZero() {
		fmt.Fprintf(&b, "remote file updated %s\n", raw.LastModified.Format("2006-01-02 15:04:05"))
	}

	for _, s := range parsed {
		b.WriteString("\n")
		last, ok := s.Last()
		if !ok {
			fmt.Fprintf(&b, "%s: no points yet\n", s.Name)
			continue
		}
		fmt.Fprintf(&b, "%s: %d points, x %g..%g, last %g\n",
			s.Name, len(s.Points), s.Points[0].X, last.X, last.Y)
	}

	return b.String()
}
