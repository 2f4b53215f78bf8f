// Package console is a reusable engine for interactive, line-oriented text
// consoles.
//
// Commands are registered on a Builder with one or more aliases, a Handler
// of fixed arity and help text. Build freezes them into an immutable
// Registry and returns a Console bound to a LineReader and an io.Writer.
//
//	b := console.NewBuilder()
//	b.MustRegister([]string{"quit", "q", "exit"}, console.Func0(func() error {
//	    done = true
//	    return nil
//	}), "Leave the console")
//	b.MustRegister([]string{"echo"}, console.Func1(func(s string) error {
//	    fmt.Println(s)
//	    return nil
//	}), "Print the argument")
//
//	c, err := b.Build(console.NewScannerReader(os.Stdin), os.Stdout)
//	for !done {
//	    if _, err := c.Prompt(); err != nil {
//	        break // console.ErrInputExhausted
//	    }
//	}
//
// # Dispatch
//
// A line is split on single spaces (see Tokenize). Trailing spaces are
// dropped, so "q " runs a zero-argument q, while leading or doubled spaces
// produce empty tokens. The active commands are scanned in order; the
// first command with an alias equal to the first token owns the line. If
// the remaining token count equals its arity the handler runs, otherwise an
// arity message is printed. No other command is tried after a match. A line
// matching nothing prints the unrecognized input text.
//
// # Active set
//
// Only active commands take part in dispatch and help. All commands start
// active; ActivateAllCommands, DeactivateAllCommands, ActivateCommand and
// DeactivateCommand change membership without ever changing the Registry.
//
// # Errors
//
// Every recoverable failure prints exactly one line and leaves the console
// usable. Prompt returns an error only for terminal conditions such as
// ErrInputExhausted. Kind classifies any returned error.
package console
