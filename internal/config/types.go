package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete jobdash configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// DefaultInterval is the refresh interval, in seconds, for targets
	// that don't set their own.
	DefaultInterval int `yaml:"default_interval" mapstructure:"default_interval"`

	// ProbeTimeout bounds the SSH reachability check in 'jobdash doctor'.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`

	// TempDir overrides where fetched files land. Empty means a
	// per-process directory under the system temp dir.
	TempDir string `yaml:"temp_dir" mapstructure:"temp_dir"`

	Targets []TargetConfig `yaml:"targets" mapstructure:"targets"`
}

// TargetConfig defines one remote job to monitor.
type TargetConfig struct {
	// Name identifies the target in the dashboard. Must be unique.
	Name string `yaml:"name" mapstructure:"name"`

	// Host is the SSH destination: hostname, user@hostname, or an SSH
	// config alias.
	Host string `yaml:"host" mapstructure:"host"`

	// Path is the output file on the remote, e.g. the pbqff log.
	Path string `yaml:"path" mapstructure:"path"`

	// Kind selects the parser: "semp" or "pbqff".
	Kind string `yaml:"kind" mapstructure:"kind"`

	// Interval overrides the default refresh interval, in seconds.
	// Zero means use the default.
	Interval int `yaml:"interval,omitempty" mapstructure:"interval"`
}

// RefreshInterval returns the target's effective interval given the
// config-wide default.
func (t TargetConfig) RefreshInterval(defaultSeconds int) time.Duration {
	s := t.Interval
	if s <= 0 {
		s = defaultSeconds
	}
	return time.Duration(s) * time.Second
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		DefaultInterval: 60,
		ProbeTimeout:    2 * time.Second,
	}
}
