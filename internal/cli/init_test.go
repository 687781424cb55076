package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigPathHonorsFlag(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()
	configFlag = "/tmp/custom.yaml"

	path, err := initConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestInitConfigPathDefaultsToGlobal(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()
	configFlag = ""

	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := initConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "jobdash", "config.yaml"), path)
}

func TestSSHConfigAliases(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	content := `Host cluster
    HostName cluster.example.edu
    User brent

Host eland
    HostName eland.example.edu

Host *
    ServerAliveInterval 60
`
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, "config"), []byte(content), 0o600))

	aliases := sshConfigAliases()

	assert.Equal(t, []string{"cluster", "eland"}, aliases, "wildcard entries should be excluded")
}

func TestSSHConfigAliasesMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Empty(t, sshConfigAliases())
}
