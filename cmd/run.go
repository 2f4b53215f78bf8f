package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/tconsole/pkg/console"
	"github.com/giantswarm/tconsole/pkg/logging"
)

type runOptions struct {
	configPath   string
	prompt       string
	unrecognized string
	plain        bool
	verbose      bool
}

// newRunCmd creates the command that starts the interactive demo shell.
func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive demo shell",
		Long: `Start the demo shell and prompt for commands until quit or end of input.

Lines are split on single spaces. The first word selects a command by alias
among the active commands and the remaining words are its arguments. Type
help for the list of active commands, lock and unlock to narrow and restore
the active set.

By default the shell uses an interactive line editor with history and TAB
completion. Use --plain to read lines from standard input without editing,
e.g. when piping a script:

  printf 'add 2 3\nquit\n' | tconsole run --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Configuration file or directory (default $HOME/.config/tconsole)")
	cmd.Flags().StringVar(&opts.prompt, "prompt", "", "Prompt text, overrides the configuration")
	cmd.Flags().StringVar(&opts.unrecognized, "unrecognized", "", "Text printed for unrecognized input, overrides the configuration")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Read plain lines from standard input without line editing")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log dispatch decisions to standard error")

	return cmd
}

func runShell(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = opts.prompt
	}
	if cmd.Flags().Changed("unrecognized") {
		cfg.UnrecognizedText = opts.unrecognized
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if opts.verbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	var reader console.LineReader
	if opts.plain {
		reader = console.NewScannerReader(cmd.InOrStdin())
	} else {
		rl, err := console.NewReadlineReader(console.ReadlineOptions{
			HistoryFile: cfg.HistoryFile,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("failed to start line editor: %w", err)
		}
		defer rl.Close()
		reader = rl
	}

	shell, err := newShell(cfg, reader, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return shell.Run(cmd.Context())
}
