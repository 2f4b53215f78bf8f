package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/tconsole/internal/config"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfigError indicates the configuration file could not be used.
	ExitCodeConfigError = 2
)

// rootCmd represents the base command for the tconsole application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tconsole",
	Short: "Line-oriented command console",
	Long: `tconsole reads lines, splits them on spaces and dispatches them to
registered commands by alias and argument count. Commands can be
activated and deactivated at runtime to restrict what the user may type.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tconsole version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		exitCode := getExitCode(err)
		if exitCode == ExitCodeConfigError {
			writeConfigReport(rootCmd.ErrOrStderr(), err)
		}
		os.Exit(exitCode)
	}
}

// writeConfigReport prints the file, details and suggestions of a
// configuration error, which the one-line cobra error leaves out.
func writeConfigReport(w io.Writer, err error) {
	var configErrs config.ConfigurationErrorCollection
	if errors.As(err, &configErrs) {
		if configErrs.Count() == 1 {
			fmt.Fprintln(w, configErrs.Errors[0].DetailedError())
		} else {
			fmt.Fprintln(w, configErrs.GetDetailedReport())
		}
		return
	}

	var configErr config.ConfigurationError
	if errors.As(err, &configErr) {
		fmt.Fprintln(w, configErr.DetailedError())
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var configErr config.ConfigurationError
	if errors.As(err, &configErr) {
		return ExitCodeConfigError
	}

	var configErrs config.ConfigurationErrorCollection
	if errors.As(err, &configErrs) {
		return ExitCodeConfigError
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCommandsCmd())
}
