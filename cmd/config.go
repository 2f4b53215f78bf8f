package cmd

import (
	"io"

	"github.com/giantswarm/tconsole/internal/config"
	"github.com/giantswarm/tconsole/internal/demo"
	"github.com/giantswarm/tconsole/pkg/console"
	"github.com/giantswarm/tconsole/pkg/logging"
)

// loadConfig loads path, or the default config directory when path is empty.
func loadConfig(path string) (config.ConsoleConfig, error) {
	if path == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			logging.Warn("CLI", "Using default configuration: %v", err)
			return config.DefaultConfig(), nil
		}
		path = defaultPath
	}
	return config.LoadConfig(path)
}

// newShell builds the demo shell configured by cfg.
func newShell(cfg config.ConsoleConfig, in console.LineReader, out io.Writer) (*demo.Shell, error) {
	return demo.New(in, out, demo.Settings{BlankCommand: cfg.BlankCommand},
		console.WithConfig(cfg.ConsoleTexts()),
		console.WithActiveCommands(cfg.ActiveCommands...),
	)
}
