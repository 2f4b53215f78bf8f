package formatting

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/tconsole/pkg/console"
)

// CommandRow is one registered command as shown by listings.
type CommandRow struct {
	Aliases []string `json:"aliases" yaml:"aliases"`
	Arity   int      `json:"arity" yaml:"arity"`
	Active  bool     `json:"active" yaml:"active"`
	Info    string   `json:"info" yaml:"info"`
}

// CommandRows lists the registered commands of c in registration order.
// With activeOnly, only active commands are listed, in dispatch order.
func CommandRows(c *console.Console, activeOnly bool) []CommandRow {
	if activeOnly {
		var rows []CommandRow
		for _, cmd := range c.ActiveCommands() {
			rows = append(rows, newCommandRow(cmd, true))
		}
		return rows
	}

	var rows []CommandRow
	for i, cmd := range c.Commands() {
		rows = append(rows, newCommandRow(cmd, c.ActiveAt(i)))
	}
	return rows
}

func newCommandRow(cmd console.Command, active bool) CommandRow {
	return CommandRow{
		Aliases: cmd.Aliases(),
		Arity:   cmd.Arity(),
		Active:  active,
		Info:    cmd.Info(),
	}
}

// WriteCommands renders rows to w in the format selected by options.
func WriteCommands(w io.Writer, rows []CommandRow, options Options) error {
	switch options.Format {
	case FormatJSON:
		if rows == nil {
			rows = []CommandRow{}
		}
		_, err := fmt.Fprintln(w, PrettyJSON(rows))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("failed to encode commands as YAML: %w", err)
		}
		return enc.Close()
	case FormatTable, "":
		return writeCommandTable(w, rows, options)
	default:
		return fmt.Errorf("unsupported output format %q", options.Format)
	}
}

func writeCommandTable(w io.Writer, rows []CommandRow, options Options) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, paint(options, text.FgYellow, "No commands registered"))
		return err
	}

	maxLen := options.MaxInfoLen
	if maxLen == 0 {
		maxLen = DefaultDescriptionMaxLen
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		paint(options, text.FgHiCyan, "ALIASES"),
		paint(options, text.FgHiCyan, "ARITY"),
		paint(options, text.FgHiCyan, "ACTIVE"),
		paint(options, text.FgHiCyan, "INFO"),
	})

	active := 0
	for _, row := range rows {
		state := paint(options, text.FgHiBlack, "no")
		if row.Active {
			state = paint(options, text.FgGreen, "yes")
			active++
		}
		t.AppendRow(table.Row{
			strings.Join(row.Aliases, ", "),
			strconv.Itoa(row.Arity),
			state,
			TruncateDescription(row.Info, maxLen),
		})
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %d of %d commands active\n",
		paint(options, text.FgHiBlue, "Total:"), active, len(rows))
	return err
}

func paint(options Options, color text.Color, s string) string {
	if !options.Color {
		return s
	}
	return color.Sprint(s)
}
