package cli

import (
	"os"
	"os/exec"

	"github.com/rileyhilliard/jobdash/internal/config"
	"github.com/rileyhilliard/jobdash/internal/errors"
)

// editCommand opens the config file in the user's editor.
func editCommand() error {
	path, err := config.Find(Config())
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file found",
			"Create one with 'jobdash init' first.")
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Editor exited with an error",
			"Set $EDITOR to the editor you want jobdash to use.")
	}
	return nil
}
