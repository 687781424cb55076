package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/fetch"
	"github.com/rileyhilliard/jobdash/internal/logger"
	"github.com/rileyhilliard/jobdash/internal/monitor"
	"github.com/rileyhilliard/jobdash/internal/refresh"
	"github.com/rileyhilliard/jobdash/internal/series"
	"github.com/rileyhilliard/jobdash/pkg/sshutil"
)

// monitorCommand starts the TUI dashboard for all configured targets.
func monitorCommand() error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if len(cfg.Targets) == 0 {
		return errors.New(errors.ErrConfig,
			"No targets configured",
			"Add one with 'jobdash init' first.")
	}

	log := logger.NewEnvLogger("jobdash")

	tempDir, err := tempDir(cfg)
	if err != nil {
		return err
	}

	fetcher, err := fetch.New(tempDir, log)
	if err != nil {
		return err
	}

	coord := refresh.NewCoordinator(fetcher, log)
	for _, t := range cfg.Targets {
		kind, err := series.ParseKind(t.Kind)
		if err != nil {
			// Validate already rejected unknown kinds; keep the wrap anyway
			// so a stale config surfaces a real message.
			return errors.Wrap(err, "Target '"+t.Name+"' has an unknown kind")
		}
		coord.Add(t.Name, t.Host, t.Path, kind, t.RefreshInterval(cfg.DefaultInterval))
	}

	model := monitor.NewModel(coord)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	// Graceful shutdown: stop the worker, then drop fetched files and the
	// agent connection.
	coord.Close()
	if err := os.RemoveAll(tempDir); err != nil {
		log.Warn("couldn't remove temp dir %s: %v", tempDir, err)
	}
	sshutil.CloseAgent()

	return runErr
}

// tempDir resolves the directory fetched files land in, honoring the
// config override.
func tempDir(cfg *config.Config) (string, error) {
	if cfg.TempDir == "" {
		return fetch.TempDir()
	}
	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrIO,
			"Couldn't create the configured temp directory",
			"Check the temp_dir setting in your config.")
	}
	return cfg.TempDir, nil
}
