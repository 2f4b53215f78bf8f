package config

import (
	"os"
	"path/filepath"

	"github.com/giantswarm/tconsole/pkg/console"
)

const (
	// DefaultLogLevel keeps dispatch tracing out of the way of the console.
	DefaultLogLevel = "warn"

	historyFileName = ".tconsole_history"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() ConsoleConfig {
	return ConsoleConfig{
		Prompt:           console.DefaultPromptText,
		UnrecognizedText: console.DefaultUnrecognizedInputText,
		HistoryFile:      filepath.Join(os.TempDir(), historyFileName),
		LogLevel:         DefaultLogLevel,
	}
}

// ConsoleTexts converts the configuration into the console's text settings.
func (c ConsoleConfig) ConsoleTexts() console.Config {
	return console.Config{
		DefaultPrompt:    c.Prompt,
		UnrecognizedText: c.UnrecognizedText,
	}
}
