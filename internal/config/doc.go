// Package config loads the configuration of a tconsole shell.
//
// Configuration is read from a single file. LoadConfig accepts either the
// file itself or a directory; for a directory, config.yaml, config.yml and
// config.toml are probed in that order. The default directory is
// ~/.config/tconsole and can be overridden with the --config flag.
//
// # File Format
//
// YAML and TOML are both supported; the format is chosen by extension.
//
//	prompt: "demo> "
//	unrecognizedText: "Unknown command, try help"
//	historyFile: /tmp/.tconsole_history
//	blankCommand: status
//	activeCommands: [help, quit, unlock]
//	logLevel: debug
//
// The same file as TOML:
//
//	prompt = "demo> "
//	activeCommands = ["help", "quit", "unlock"]
//
// Absent keys keep the values of DefaultConfig. A missing file is not an
// error. Malformed files and invalid values are reported as
// ConfigurationError / ConfigurationErrorCollection.
package config
