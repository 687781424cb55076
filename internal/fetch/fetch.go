// Package fetch retrieves remote job log files over scp. Each fetch is a
// full re-copy into a fixed temp file, not an incremental tail: the remote
// logs are small and a whole-file copy keeps the transport dead simple.
package fetch

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/logger"
	"github.com/rileyhilliard/jobdash/internal/series"
	"github.com/rileyhilliard/jobdash/internal/util"
)

const (
	// primaryFile is the fixed local filename the remote log is copied to.
	primaryFile = "path.dat"
	// companionFile is both the remote sibling filename fetched for semp
	// targets and the fixed local name it is copied to.
	companionFile = "test.dat"
)

// Spec is an immutable snapshot of the remote coordinates of one target,
// taken at enqueue time. The worker only ever sees Specs, never live
// registry entries.
type Spec struct {
	Name string
	Host string
	Path string
	Kind series.Kind
}

// Address returns the scp source address for the primary file. The path is
// quoted for the remote shell, with a leading tilde left bare so the remote
// side still expands it.
func (s Spec) Address() string {
	return s.Host + ":" + util.ShellQuotePreserveTilde(s.Path)
}

// Raw is the result of one fetch: the primary file's contents and local
// modification time, plus the companion file's contents for kinds that use
// one. It lives only inside a single refresh cycle.
type Raw struct {
	LastModified time.Time
	Contents     string
	Companion    string
}

// Fetcher copies remote log files into a temp directory via scp.
// It is not safe for concurrent use: both fetch destinations are fixed
// filenames inside the temp directory, so all fetches must be serialized
// through the single refresh worker.
type Fetcher struct {
	scp     string
	tempDir string
	log     logger.Logger
}

// New creates a Fetcher writing into tempDir, locating scp on PATH.
func New(tempDir string, log logger.Logger) (*Fetcher, error) {
	scp, err := exec.LookPath("scp")
	if err != nil {
		return nil, errors.New(errors.ErrTransport,
			"scp isn't installed locally",
			"scp ships with OpenSSH; install the openssh client package for your system.")
	}
	return NewWithScp(scp, tempDir, log), nil
}

// NewWithScp creates a Fetcher using the given scp binary. Exported for
// tests, which substitute a stub executable.
func NewWithScp(scp, tempDir string, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Noop()
	}
	return &Fetcher{scp: scp, tempDir: tempDir, log: log}
}

// Fetch copies the target's log file (and, for semp targets, its companion
// test-set file) into the temp directory and reads them back. Any failure
// aborts just this refresh cycle; the caller keeps whatever series the
// target already had.
func (f *Fetcher) Fetch(spec Spec) (*Raw, error) {
	local := filepath.Join(f.tempDir, primaryFile)
	f.log.Debug("fetching %s at %s", spec.Address(), time.Now().Format(time.Stamp))

	if err := f.copy(spec.Address(), local); err != nil {
		return nil, err
	}

	info, err := os.Stat(local)
	if os.IsNotExist(err) {
		// scp exited zero but wrote nothing, e.g. a remote glob that
		// matched no files.
		return nil, errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("scp of %s produced no file", spec.Address()),
			"Check that the remote path exists.")
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrIO,
			fmt.Sprintf("Couldn't stat the fetched copy of %s", spec.Address()),
			"")
	}

	contents, err := readText(local)
	if err != nil {
		return nil, err
	}

	raw := &Raw{
		LastModified: info.ModTime().Local(),
		Contents:     contents,
	}

	if spec.Kind.NeedsCompanion() {
		remote := spec.Host + ":" + util.ShellQuotePreserveTilde(path.Join(path.Dir(spec.Path), companionFile))
		localAux := filepath.Join(f.tempDir, companionFile)
		if err := f.copy(remote, localAux); err != nil {
			return nil, err
		}
		raw.Companion, err = readText(localAux)
		if err != nil {
			return nil, err
		}
	}

	return raw, nil
}

// copy runs one scp subprocess: -p preserves the remote modification time,
// -C compresses the transfer.
func (f *Fetcher) copy(remote, local string) error {
	cmd := exec.Command(f.scp, "-p", "-C", remote, local)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return errors.WrapWithCode(err, errors.ErrTransport,
			fmt.Sprintf("scp of %s didn't complete", remote),
			"Check that the host is reachable and the remote path exists.")
	}
	return nil
}

// readText reads a fetched file and verifies it is valid UTF-8 text.
func readText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrIO,
			fmt.Sprintf("Couldn't read the fetched file %s", path),
			"")
	}
	if !utf8.Valid(b) {
		return "", errors.New(errors.ErrIO,
			fmt.Sprintf("Fetched file %s isn't text", path),
			"Check that the configured remote path points at the job's log file.")
	}
	return string(b), nil
}

// TempDir creates the temp directory used for fetched files. The pid suffix
// keeps concurrent jobdash processes from clobbering each other's copies,
// since filenames inside the directory are fixed.
func TempDir() (string, error) {
	dir := filepath.Join(os.TempDir(), fmt.Sprintf("jobdash.%d", os.Getpid()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrIO,
			"Couldn't create the temp directory for fetched files",
			"Check permissions on "+os.TempDir())
	}
	return dir, nil
}
