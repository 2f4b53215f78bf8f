package console

import (
	"slices"
	"strings"
)

// DefaultInfoText is used for commands registered without help text.
const DefaultInfoText = "Command does not have info text"

// Handler is the callable behind a command. Arity is fixed for the life of
// the handler; Invoke is only ever called with exactly Arity() arguments.
type Handler interface {
	Arity() int
	Invoke(args []string) error
}

// Func0 adapts a function without arguments to a Handler.
type Func0 func() error

func (f Func0) Arity() int { return 0 }

func (f Func0) Invoke(args []string) error { return f() }

// Func1 adapts a function of one argument to a Handler.
type Func1 func(a string) error

func (f Func1) Arity() int { return 1 }

func (f Func1) Invoke(args []string) error { return f(args[0]) }

// Func2 adapts a function of two arguments to a Handler.
type Func2 func(a, b string) error

func (f Func2) Arity() int { return 2 }

func (f Func2) Invoke(args []string) error { return f(args[0], args[1]) }

// Func3 adapts a function of three arguments to a Handler.
type Func3 func(a, b, c string) error

func (f Func3) Arity() int { return 3 }

func (f Func3) Invoke(args []string) error { return f(args[0], args[1], args[2]) }

type sliceHandler struct {
	arity int
	fn    func(args []string) error
}

func (h sliceHandler) Arity() int { return h.arity }

func (h sliceHandler) Invoke(args []string) error { return h.fn(args) }

// NewHandler returns a Handler of the given arity backed by a function that
// receives its arguments as a slice.
func NewHandler(arity int, fn func(args []string) error) Handler {
	if fn == nil {
		return nil
	}
	return sliceHandler{arity: arity, fn: fn}
}

// Command is an immutable registered command.
type Command struct {
	aliases []string
	handler Handler
	info    string
}

// Name returns the canonical alias.
func (c Command) Name() string {
	return c.aliases[0]
}

// Aliases returns a copy of the command's aliases, canonical first.
func (c Command) Aliases() []string {
	return slices.Clone(c.aliases)
}

// Arity returns the number of arguments the handler accepts.
func (c Command) Arity() int {
	return c.handler.Arity()
}

// Info returns the help text.
func (c Command) Info() string {
	return c.info
}

// HasAlias reports whether name is one of the command's aliases.
func (c Command) HasAlias(name string) bool {
	return slices.Contains(c.aliases, name)
}

// newCommand validates a definition and builds the Command value.
func newCommand(aliases []string, handler Handler, info string) (Command, error) {
	if len(aliases) == 0 {
		return Command{}, &InvalidCommandSpecError{Reason: "at least one alias is required"}
	}
	for _, alias := range aliases {
		if alias == "" {
			return Command{}, &InvalidCommandSpecError{Aliases: aliases, Reason: "aliases must be non-empty"}
		}
		if strings.Contains(alias, " ") {
			return Command{}, &InvalidCommandSpecError{Aliases: aliases, Reason: "alias " + quote(alias) + " contains a space and can never match"}
		}
	}
	if handler == nil {
		return Command{}, &InvalidCommandSpecError{Aliases: aliases, Reason: "handler is nil"}
	}
	if handler.Arity() < 0 {
		return Command{}, &InvalidCommandSpecError{Aliases: aliases, Reason: "arity must not be negative"}
	}
	if info == "" {
		info = DefaultInfoText
	}

	return Command{
		aliases: slices.Clone(aliases),
		handler: handler,
		info:    info,
	}, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
