package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRun runs `tconsole run --plain` over input with an empty
// configuration directory unless args supply --config.
func executeRun(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	if !containsFlag(args, "--config") {
		args = append(args, "--config", t.TempDir())
	}

	var stdout, stderr bytes.Buffer
	runCmd := newRunCmd()
	runCmd.SetIn(strings.NewReader(input))
	runCmd.SetOut(&stdout)
	runCmd.SetErr(&stderr)
	runCmd.SetArgs(append([]string{"--plain"}, args...))

	err := runCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func TestRun_DefaultPrompt(t *testing.T) {
	out, _, err := executeRun(t, "echo hi\nquit\necho never\n")
	require.NoError(t, err)
	assert.Equal(t, ">_hi\n>_Bye\n", out)
}

func TestRun_FlagsOverrideTexts(t *testing.T) {
	out, _, err := executeRun(t, "nope\n", "--prompt", "", "--unrecognized", "What?")
	require.NoError(t, err)
	assert.Equal(t, "What?\n", out)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
prompt = ""
blankCommand = "status"
activeCommands = ["status", "help"]
`), 0644))

	out, _, err := executeRun(t, "\necho hi\nhelp\n", "--config", path)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"2 of 9 commands active",
		"Input unrecognized. Type help for more information about commands",
		"status : Shows how many commands are active",
		"help : Displays all possible commands",
	}, "\n")+"\n", out)
}

func TestRun_VerboseLogsDispatch(t *testing.T) {
	_, stderr, err := executeRun(t, "q\n", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "subsystem=Console")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestRun_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "prompt: [unclosed"},
		{name: "invalid log level", content: "logLevel: loud"},
		{name: "unknown active command", content: "activeCommands: [fly]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, _, err := executeRun(t, "quit\n", "--config", path)
			require.Error(t, err)
		})
	}
}

func TestRun_ConfigErrorExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: loud"), 0644))

	_, _, err := executeRun(t, "", "--config", path)
	require.Error(t, err)
	assert.Equal(t, ExitCodeConfigError, getExitCode(err))
}

func TestRun_RejectsArguments(t *testing.T) {
	_, _, err := executeRun(t, "", "extra")
	assert.Error(t, err)
}

func TestRun_ConfigErrorReport(t *testing.T) {
	t.Run("parse error shows details and suggestions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0644))

		_, _, err := executeRun(t, "", "--config", path)
		require.Error(t, err)

		var report bytes.Buffer
		writeConfigReport(&report, err)
		assert.Contains(t, report.String(), "Configuration Error in config.yaml")
		assert.Contains(t, report.String(), "File: "+path)
		assert.Contains(t, report.String(), "Details: YAML parse error")
		assert.Contains(t, report.String(), "- check the file is valid YAML")
	})

	t.Run("single validation error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logLevel: loud"), 0644))

		_, _, err := executeRun(t, "", "--config", path)
		require.Error(t, err)

		var report bytes.Buffer
		writeConfigReport(&report, err)
		assert.Contains(t, report.String(), "Type: validation")
		assert.Contains(t, report.String(), "logLevel")
		assert.NotContains(t, report.String(), "Detailed Configuration Error Report")
	})

	t.Run("several validation errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logLevel: loud\nblankCommand: show all\n"), 0644))

		_, _, err := executeRun(t, "", "--config", path)
		require.Error(t, err)

		var report bytes.Buffer
		writeConfigReport(&report, err)
		assert.Contains(t, report.String(), "Detailed Configuration Error Report (2 errors):")
		assert.Contains(t, report.String(), "blankCommand")
	})

	t.Run("other errors print nothing", func(t *testing.T) {
		var report bytes.Buffer
		writeConfigReport(&report, errors.New("boom"))
		assert.Empty(t, report.String())
	})
}
