package config

// ConsoleConfig is the top-level configuration structure for a tconsole
// shell. Zero values mean "use the default".
type ConsoleConfig struct {
	// Prompt is written before every line.
	Prompt string `yaml:"prompt,omitempty" toml:"prompt,omitempty"`
	// UnrecognizedText is printed when no active command matches a line.
	UnrecognizedText string `yaml:"unrecognizedText,omitempty" toml:"unrecognizedText,omitempty"`
	// HistoryFile persists interactive line history; empty disables it.
	HistoryFile string `yaml:"historyFile,omitempty" toml:"historyFile,omitempty"`
	// BlankCommand names a zero-arity command run on blank input.
	BlankCommand string `yaml:"blankCommand,omitempty" toml:"blankCommand,omitempty"`
	// ActiveCommands is the initial active set, in order. Empty means all.
	ActiveCommands []string `yaml:"activeCommands,omitempty" toml:"activeCommands,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty" toml:"logLevel,omitempty"`
}

// Format identifies the encoding of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)
