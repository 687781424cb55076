package doctor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCheckMissingFileWarns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	check := &ConfigCheck{}
	result := check.Run()

	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Suggestion, "jobdash init")
}

func TestConfigCheckValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `version: 1
targets:
  - name: water-opt
    host: cluster
    path: /home/u/opt/semp.out
    kind: semp
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	check := &ConfigCheck{Explicit: path}
	result := check.Run()

	assert.Equal(t, StatusPass, result.Status)
	assert.Contains(t, result.Message, "1 target(s)")
}

func TestConfigCheckInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `version: 1
targets:
  - name: broken
    host: cluster
    path: /home/u/opt/semp.out
    kind: not-a-kind
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	check := &ConfigCheck{Explicit: path}
	result := check.Run()

	assert.Equal(t, StatusFail, result.Status)
}

func TestAuthCheckAgent(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "/tmp/fake-agent.sock")

	result := (&AuthCheck{}).Run()

	assert.Equal(t, StatusPass, result.Status)
	assert.Contains(t, result.Message, "agent")
}

func TestAuthCheckIdentityFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SSH_AUTH_SOCK", "")

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	key := filepath.Join(sshDir, "id_ed25519")
	require.NoError(t, os.WriteFile(key, []byte("fake"), 0o600))

	result := (&AuthCheck{}).Run()

	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, key, result.Message)
}

func TestAuthCheckNothingAvailable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SSH_AUTH_SOCK", "")

	result := (&AuthCheck{}).Run()

	assert.Equal(t, StatusWarn, result.Status)
}

func TestHostCheckUnreachable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SSH_AUTH_SOCK", "")

	check := &HostCheck{Host: "nonexistent.invalid", Timeout: 100 * time.Millisecond}
	result := check.Run()

	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Suggestion, "ssh nonexistent.invalid")
}
