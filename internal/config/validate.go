package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/series"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but jobdash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest jobdash: https://github.com/rileyhilliard/jobdash/releases")
	}

	if cfg.DefaultInterval < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("default_interval is negative (%d)", cfg.DefaultInterval),
			"Use a positive number of seconds, or omit it for the 60s default.")
	}

	seen := make(map[string]bool, len(cfg.Targets))
	for i, t := range cfg.Targets {
		if err := validateTarget(i, t); err != nil {
			return err
		}
		if seen[t.Name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Duplicate target name '%s'", t.Name),
				"Target names identify jobs on the dashboard and must be unique.")
		}
		seen[t.Name] = true
	}

	return nil
}

func validateTarget(i int, t TargetConfig) error {
	where := fmt.Sprintf("targets[%d]", i)
	if t.Name != "" {
		where = fmt.Sprintf("target '%s'", t.Name)
	}

	if t.Name == "" {
		return errors.New(errors.ErrConfig,
			where+" has no name",
			"Every target needs a name to show on the dashboard.")
	}
	if t.Host == "" {
		return errors.New(errors.ErrConfig,
			where+" has no host",
			"Set host to a hostname, user@hostname, or an SSH config alias.")
	}
	if strings.Contains(t.Host, ":") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s host '%s' contains ':'", where, t.Host),
			"Put the remote file location in 'path', not in the host.")
	}
	if t.Path == "" {
		return errors.New(errors.ErrConfig,
			where+" has no path",
			"Set path to the job's output file on the remote.")
	}
	if !strings.HasPrefix(t.Path, "/") && !strings.HasPrefix(t.Path, "~") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s path '%s' is relative", where, t.Path),
			"Use an absolute path, or one starting with ~.")
	}
	if _, err := series.ParseKind(t.Kind); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("%s has an unknown kind '%s'", where, t.Kind),
			"Supported kinds are 'semp' and 'pbqff'.")
	}
	if t.Interval < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s interval is negative (%d)", where, t.Interval),
			"Use a positive number of seconds, or omit it to inherit the default.")
	}

	return nil
}
