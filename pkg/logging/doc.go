// Package logging provides structured logging for tconsole built on Go's
// standard slog package.
//
// # Log Levels
//   - **Debug**: dispatch decisions, alias collisions, config resolution
//   - **Info**: general informational messages
//   - **Warn**: conditions that may indicate a misconfiguration
//   - **Error**: failures
//
// Every entry carries a subsystem attribute. Logging is silent until
// InitForCLI is called, so library users of pkg/console get no output
// unless they opt in.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "starting console")
//	logging.Debug("ConfigLoader", "Loaded configuration from %s", path)
//	logging.Error("Console", err, "read failed")
//
//	log := logging.For("Console", slog.String("session", id))
//	log.Debug("dispatched %q", alias)
//
// # Subsystems
//
//   - **Bootstrap**: CLI startup
//   - **ConfigLoader**: configuration loading and validation
//   - **Console**: registry build, activation changes, dispatch
//
// User-facing console output never goes through this package; it is
// written to the console's output writer.
package logging
