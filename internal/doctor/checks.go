package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/rileyhilliard/jobdash/pkg/sshutil"
)

// ConfigCheck verifies the config file exists, parses, and validates.
type ConfigCheck struct {
	// Explicit is the --config flag value, empty for the default location.
	Explicit string
}

func (c *ConfigCheck) Name() string { return "config file" }

func (c *ConfigCheck) Run() CheckResult {
	path, err := config.Find(c.Explicit)
	if err != nil {
		return CheckResult{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "no config file found",
			Suggestion: "Create one with 'jobdash init'.",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}
	if err := config.Validate(cfg); err != nil {
		return CheckResult{Name: c.Name(), Status: StatusFail, Message: err.Error()}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d target(s) in %s", len(cfg.Targets), path),
	}
}

// ScpCheck verifies the scp binary is on PATH. Fetches shell out to scp, so
// a missing binary means no target can ever refresh.
type ScpCheck struct{}

func (c *ScpCheck) Name() string { return "scp binary" }

func (c *ScpCheck) Run() CheckResult {
	path, err := exec.LookPath("scp")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "scp not found on PATH",
			Suggestion: "Install the OpenSSH client package for your system.",
		}
	}
	return CheckResult{Name: c.Name(), Status: StatusPass, Message: path}
}

// AuthCheck verifies some SSH authentication method is available: a running
// agent or a default identity file.
type AuthCheck struct{}

func (c *AuthCheck) Name() string { return "ssh auth" }

func (c *AuthCheck) Run() CheckResult {
	if os.Getenv("SSH_AUTH_SOCK") != "" {
		return CheckResult{Name: c.Name(), Status: StatusPass, Message: "SSH agent available"}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		for _, name := range []string{"id_ed25519", "id_rsa", "id_ecdsa"} {
			key := filepath.Join(home, ".ssh", name)
			if _, statErr := os.Stat(key); statErr == nil {
				return CheckResult{Name: c.Name(), Status: StatusPass, Message: key}
			}
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "no SSH agent or default identity file",
		Suggestion: "Start ssh-agent or generate a key with ssh-keygen.",
	}
}

// HostCheck probes SSH connectivity to one host.
type HostCheck struct {
	Host    string
	Timeout time.Duration
}

func (c *HostCheck) Name() string { return "host " + c.Host }

func (c *HostCheck) Run() CheckResult {
	latency, err := sshutil.Probe(c.Host, c.Timeout)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    err.Error(),
			Suggestion: "Check the host by hand: ssh " + c.Host,
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: latency.Round(time.Millisecond).String(),
	}
}
