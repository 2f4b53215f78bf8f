package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/giantswarm/tconsole/pkg/logging"
)

const (
	// DefaultPromptText is written before every line read by Prompt.
	DefaultPromptText = ">_"

	// DefaultUnrecognizedInputText is printed when no active command matches.
	DefaultUnrecognizedInputText = "Input unrecognized. Type help for more information about commands"

	helpAlias = "help"
	helpInfo  = "Displays all possible commands"
)

// Config holds the texts a console prints on its own behalf.
type Config struct {
	DefaultPrompt    string
	UnrecognizedText string
}

// DefaultConfig returns the stock prompt and unrecognized-input texts.
func DefaultConfig() Config {
	return Config{
		DefaultPrompt:    DefaultPromptText,
		UnrecognizedText: DefaultUnrecognizedInputText,
	}
}

// Option customizes a console at Build time.
type Option func(*Console) error

// WithConfig replaces the default texts.
func WithConfig(cfg Config) Option {
	return func(c *Console) error {
		c.config = cfg
		return nil
	}
}

// WithActiveCommands starts the console with only the named commands
// active, in the given order. An empty list keeps every command active.
func WithActiveCommands(names ...string) Option {
	return func(c *Console) error {
		if len(names) == 0 {
			return nil
		}
		c.active.DeactivateAll()
		for _, name := range names {
			if !c.active.Activate(name) {
				return fmt.Errorf("cannot activate unknown command %q", name)
			}
		}
		return nil
	}
}

// completerSetter is implemented by readers that support TAB completion.
type completerSetter interface {
	SetCompleter(candidates func() []string)
}

// Console reads lines from a LineReader, dispatches them to the active
// commands and writes results to an io.Writer.
//
// A Console is not safe for concurrent use; embedders that call it from
// several goroutines must serialize the calls.
type Console struct {
	registry   *Registry
	active     *ActiveSet
	dispatcher *Dispatcher

	in  LineReader
	out io.Writer

	config  Config
	session string
	log     logging.Logger
}

// Build freezes the registered commands into a Registry and returns a
// console reading from in and writing to out. Every command starts active.
func (b *Builder) Build(in LineReader, out io.Writer, opts ...Option) (*Console, error) {
	if in == nil {
		return nil, errors.New("console requires a line reader")
	}
	if out == nil {
		return nil, errors.New("console requires an output writer")
	}

	c := &Console{
		in:      in,
		out:     out,
		config:  DefaultConfig(),
		session: uuid.NewString(),
	}
	c.log = logging.For("Console", slog.String("session", c.session))

	help, err := newCommand([]string{helpAlias}, Func0(c.help), helpInfo)
	if err != nil {
		return nil, err
	}

	registry, err := b.buildRegistry(&help)
	if err != nil {
		return nil, err
	}
	c.registry = registry
	c.active = NewActiveSet(registry)
	c.dispatcher = NewDispatcher(c.active, c.log)

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	collisions := registry.aliasCollisions()
	aliases := make([]string, 0, len(collisions))
	for alias := range collisions {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		c.log.Debug("alias %q is shared by %s; the first active one wins", alias, strings.Join(collisions[alias], ", "))
	}

	if cs, ok := in.(completerSetter); ok {
		cs.SetCompleter(func() []string { return c.Completions("") })
	}

	c.log.Debug("console built with %d commands", registry.Len())
	return c, nil
}

// Prompt writes the default prompt, reads one line and dispatches it.
//
// It returns true when a handler ran and succeeded. Recoverable failures
// (unrecognized input, arity mismatch, handler error) are reported as one
// output line and return false with a nil error. A non-nil error is
// terminal for this call: ErrInputExhausted, ErrInterrupted or a read
// failure.
func (c *Console) Prompt() (bool, error) {
	return c.PromptWith(c.config.DefaultPrompt)
}

// PromptWith is Prompt with a custom prompt text.
func (c *Console) PromptWith(promptText string) (bool, error) {
	if ps, ok := c.in.(PromptSetter); ok {
		ps.SetPrompt(promptText)
	} else {
		fmt.Fprint(c.out, promptText)
	}

	line, err := c.in.ReadLine()
	if err != nil {
		c.log.Debug("read ended: %v", err)
		return false, err
	}

	return c.Execute(line) == nil, nil
}

// Execute dispatches one line as if Prompt had read it. Recoverable
// failures are reported on the output and also returned for inspection.
func (c *Console) Execute(line string) error {
	err := c.dispatcher.Dispatch(Tokenize(line))
	c.report(err)
	return err
}

func (c *Console) report(err error) {
	switch Kind(err) {
	case KindNone:
	case KindUnrecognizedInput:
		c.Println(c.config.UnrecognizedText)
	case KindHandlerError:
		var herr *HandlerError
		errors.As(err, &herr)
		c.log.Debug("handler for %q failed: %v", herr.Alias, herr.Err)
		c.Println(herr.Message())
	default:
		c.Println(err.Error())
	}
}

// Println writes text followed by a newline to the output.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// SetDefaultPromptText changes the text written by Prompt.
func (c *Console) SetDefaultPromptText(text string) {
	c.config.DefaultPrompt = text
}

// SetUnrecognizedInputText changes the text printed for unrecognized input.
func (c *Console) SetUnrecognizedInputText(text string) {
	c.config.UnrecognizedText = text
}

// Config returns a copy of the current texts.
func (c *Console) Config() Config {
	return c.config
}

// Session returns the id identifying this console in log output.
func (c *Console) Session() string {
	return c.session
}

// ActivateAllCommands makes every registered command active again, in
// registration order.
func (c *Console) ActivateAllCommands() {
	c.active.ActivateAll()
	c.log.Debug("activated all %d commands", c.active.Len())
}

// DeactivateAllCommands empties the active set. The registry is untouched.
func (c *Console) DeactivateAllCommands() {
	c.active.DeactivateAll()
	c.log.Debug("deactivated all commands")
}

// ActivateCommand appends the first command owning name to the active set
// unless it is already active. It reports whether the command exists.
func (c *Console) ActivateCommand(name string) bool {
	ok := c.active.Activate(name)
	c.log.Debug("activate %q: found=%t", name, ok)
	return ok
}

// DeactivateCommand removes the first command owning name from the active
// set. It reports whether the command exists.
func (c *Console) DeactivateCommand(name string) bool {
	ok := c.active.Deactivate(name)
	c.log.Debug("deactivate %q: found=%t", name, ok)
	return ok
}

// IsActive reports whether the first command owning name is active.
func (c *Console) IsActive(name string) bool {
	return c.active.Contains(name)
}

// ActiveAt reports whether the i-th registered command is active.
func (c *Console) ActiveAt(i int) bool {
	return c.active.containsIndex(i)
}

// ActiveCommands returns the active commands in dispatch order.
func (c *Console) ActiveCommands() []Command {
	return c.active.Commands()
}

// Commands returns every registered command in registration order.
func (c *Console) Commands() []Command {
	return c.registry.Commands()
}

// Completions returns the aliases of active commands starting with prefix,
// in dispatch order.
func (c *Console) Completions(prefix string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, cmd := range c.active.Commands() {
		for _, alias := range cmd.aliases {
			if strings.HasPrefix(alias, prefix) && !seen[alias] {
				seen[alias] = true
				out = append(out, alias)
			}
		}
	}
	return out
}

// Help prints "<canonical alias> : <info>" for every active command, in
// active order.
func (c *Console) Help() {
	for _, cmd := range c.active.Commands() {
		c.Println(cmd.Name() + " : " + cmd.Info())
	}
}

func (c *Console) help() error {
	c.Help()
	return nil
}
