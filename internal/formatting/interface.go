// Package formatting renders command listings for the tconsole CLI.
//
// Listings can be printed as a rounded go-pretty table for people, or as
// JSON or YAML for scripts.
package formatting

import (
	"fmt"
	"strings"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output
	// MaxInfoLen bounds the info column of tables; 0 means DefaultDescriptionMaxLen.
	MaxInfoLen int
}

// ParseFormat validates a user supplied format name. The empty string
// selects FormatTable.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: table, json, yaml)", s)
	}
}
