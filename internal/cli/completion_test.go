package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freshRootCmd creates a bare root command so completion output isn't
// affected by state on the real rootCmd.
func freshRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobdash",
		Short: "Live dashboard for long-running remote computational jobs",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for jobdash")
	assert.Contains(t, output, "__jobdash_debug")
	assert.Contains(t, output, "complete -o default -F __start_jobdash jobdash")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef jobdash")
	assert.Contains(t, output, "_jobdash()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "fish completion for jobdash")
	assert.Contains(t, output, "complete -c jobdash")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionIncludesBuiltinCommands(t *testing.T) {
	// Commands with local flags get statically generated completion
	// functions, so their presence in the script proves registration.
	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "__start_jobdash", "should have start function")
	assert.Contains(t, output, "_jobdash_init()")
	assert.Contains(t, output, "_jobdash_doctor()")
	assert.Contains(t, output, "_jobdash_completion()")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	assert.Error(t, err)
}
