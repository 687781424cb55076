package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/logger"
	"github.com/rileyhilliard/jobdash/internal/series"
)

// writeStubScp writes a fake scp executable that copies canned content into
// the destination argument. scp is invoked as "scp -p -C <remote> <local>",
// so $3 is the remote address and $4 the local path.
func writeStubScp(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scp scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "scp")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestFetchPbqff(t *testing.T) {
	scp := writeStubScp(t, `printf '[iter 1 finished after 1.0 s with 9 jobs remaining]\n' > "$4"`)
	tempDir := t.TempDir()

	f := NewWithScp(scp, tempDir, logger.Noop())
	raw, err := f.Fetch(Spec{Name: "anpath", Host: "cluster", Path: "/home/u/anpath/pbqff.log", Kind: series.KindPbqff})
	require.NoError(t, err)

	assert.Contains(t, raw.Contents, "[iter 1")
	assert.Empty(t, raw.Companion)
	assert.False(t, raw.LastModified.IsZero())
}

func TestFetchSempIncludesCompanion(t *testing.T) {
	// The stub writes different content depending on the remote filename so
	// we can tell the two copies apart.
	scp := writeStubScp(t, `case "$3" in
*test.dat*) printf '1 0.5\n' > "$4" ;;
*) printf '1 1.0 a 2.0 b 3.0\n' > "$4" ;;
esac`)
	tempDir := t.TempDir()

	f := NewWithScp(scp, tempDir, logger.Noop())
	raw, err := f.Fetch(Spec{Name: "opt", Host: "queue", Path: "/home/u/opt/path.dat", Kind: series.KindSemp})
	require.NoError(t, err)

	assert.Contains(t, raw.Contents, "1 1.0")
	assert.Contains(t, raw.Companion, "1 0.5")

	// Both copies land on fixed filenames in the temp dir.
	assert.FileExists(t, filepath.Join(tempDir, "path.dat"))
	assert.FileExists(t, filepath.Join(tempDir, "test.dat"))
}

func TestFetchTransportFailure(t *testing.T) {
	scp := writeStubScp(t, `echo 'ssh: connect to host cluster port 22: Connection refused' >&2; exit 1`)

	f := NewWithScp(scp, t.TempDir(), logger.Noop())
	_, err := f.Fetch(Spec{Name: "anpath", Host: "cluster", Path: "/p", Kind: series.KindPbqff})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
	assert.Contains(t, err.Error(), "Connection refused")
}

func TestFetchCompanionFailureAbortsCycle(t *testing.T) {
	scp := writeStubScp(t, `case "$3" in
*test.dat*) exit 1 ;;
*) printf '1 1.0 a 2.0 b 3.0\n' > "$4" ;;
esac`)

	f := NewWithScp(scp, t.TempDir(), logger.Noop())
	_, err := f.Fetch(Spec{Name: "opt", Host: "queue", Path: "/home/u/opt/path.dat", Kind: series.KindSemp})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestFetchRejectsBinaryContent(t *testing.T) {
	scp := writeStubScp(t, `printf '\377\376\000binary' > "$4"`)

	f := NewWithScp(scp, t.TempDir(), logger.Noop())
	_, err := f.Fetch(Spec{Name: "anpath", Host: "cluster", Path: "/p", Kind: series.KindPbqff})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrIO))
}

func TestFetchMissingOutputIsTransportError(t *testing.T) {
	// scp exits zero but produced no file (e.g. remote glob matched nothing).
	scp := writeStubScp(t, `exit 0`)

	f := NewWithScp(scp, t.TempDir(), logger.Noop())
	_, err := f.Fetch(Spec{Name: "anpath", Host: "cluster", Path: "/p", Kind: series.KindPbqff})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTransport))
}

func TestSpecAddress(t *testing.T) {
	spec := Spec{Host: "cluster", Path: "/home/u/job/pbqff.log"}
	assert.Equal(t, "cluster:'/home/u/job/pbqff.log'", spec.Address())
}

func TestSpecAddressPreservesTilde(t *testing.T) {
	spec := Spec{Host: "cluster", Path: "~/my jobs/pbqff.log"}
	assert.Equal(t, "cluster:~/'my jobs/pbqff.log'", spec.Address())
}

func TestTempDir(t *testing.T) {
	dir, err := TempDir()
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	assert.DirExists(t, dir)
	assert.Contains(t, dir, fmt.Sprintf("jobdash.%d", os.Getpid()))
}
