package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/giantswarm/tconsole/internal/formatting"
	"github.com/giantswarm/tconsole/pkg/console"
)

type commandsOptions struct {
	configPath string
	all        bool
	output     string
	noColor    bool
}

// newCommandsCmd creates the command that lists the demo shell's commands.
func newCommandsCmd() *cobra.Command {
	opts := &commandsOptions{}

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands of the demo shell",
		Long: `List the commands of the demo shell.

By default only the commands active at startup are shown, in dispatch
order. With --all every registered command is shown in registration order.
The configuration file decides which commands start active and in which
order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCommands(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Configuration file or directory (default $HOME/.config/tconsole)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Include inactive commands")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored table output")

	return cmd
}

func listCommands(cmd *cobra.Command, opts *commandsOptions) error {
	format, err := formatting.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	shell, err := newShell(cfg, console.NewScannerReader(strings.NewReader("")), io.Discard)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return formatting.WriteCommands(out, formatting.CommandRows(shell.Console(), !opts.all), formatting.Options{
		Format: format,
		Color:  !opts.noColor && isTerminal(out),
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}
