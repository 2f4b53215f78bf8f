package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineOptions configures a ReadlineReader. Nil streams default to the
// process terminal.
type ReadlineOptions struct {
	// HistoryFile persists entered lines across sessions; empty disables history.
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// ReadlineReader is an interactive LineReader with line editing, history
// and TAB completion.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a ReadlineReader. Close must be called to
// restore the terminal.
func NewReadlineReader(opts ReadlineOptions) (*ReadlineReader, error) {
	config := &readline.Config{
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		Stdin:           opts.Stdin,
		Stdout:          opts.Stdout,
		Stderr:          opts.Stderr,

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine implements LineReader.
func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", ErrInputExhausted
	case err != nil:
		return "", fmt.Errorf("readline error: %w", err)
	}
	return line, nil
}

// SetPrompt implements PromptSetter.
func (r *ReadlineReader) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

// SetCompleter installs TAB completion of the first word. candidates is
// called on every completion request so it can follow activation changes.
func (r *ReadlineReader) SetCompleter(candidates func() []string) {
	cfg := r.rl.Config.Clone()
	cfg.AutoComplete = readline.NewPrefixCompleter(
		readline.PcItemDynamic(func(string) []string {
			return candidates()
		}),
	)
	r.rl.SetConfig(cfg)
}

// Close restores the terminal and flushes history.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// filterInput blocks Ctrl+Z, which would suspend the process mid-line.
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
