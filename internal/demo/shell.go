package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/giantswarm/tconsole/pkg/console"
	"github.com/giantswarm/tconsole/pkg/logging"
)

// lockedCommands stay active while the shell is locked.
var lockedCommands = []string{"unlock", "help", "quit"}

// Shell is the demo command set bound to a console.
type Shell struct {
	console *console.Console
	done    bool
}

// Settings select the shell's optional behavior.
type Settings struct {
	// BlankCommand is run for blank lines; empty leaves blank lines unrecognized.
	BlankCommand string
}

// New registers the demo commands and builds the console reading from in.
func New(in console.LineReader, out io.Writer, settings Settings, opts ...console.Option) (*Shell, error) {
	s := &Shell{}

	b := console.NewBuilder().
		MustRegister([]string{"quit", "q", "exit"}, console.Func0(s.quit), "Ends the session").
		MustRegister([]string{"echo", "say"}, console.Func1(s.echo), "Prints its argument").
		MustRegister([]string{"add", "sum"}, console.Func2(s.add), "Prints the sum of two integers").
		MustRegister([]string{"enable"}, console.Func1(s.enable), "Activates the named command").
		MustRegister([]string{"disable"}, console.Func1(s.disable), "Deactivates the named command").
		MustRegister([]string{"lock"}, console.Func0(s.lock), "Leaves only unlock, help and quit active").
		MustRegister([]string{"unlock"}, console.Func0(s.unlock), "Activates every command").
		MustRegister([]string{"status"}, console.Func0(s.status), "Shows how many commands are active")
	if settings.BlankCommand != "" {
		b.SetBlankCommand(settings.BlankCommand)
	}

	c, err := b.Build(in, out, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build demo shell: %w", err)
	}
	s.console = c
	return s, nil
}

// Console returns the console driven by the shell.
func (s *Shell) Console() *console.Console {
	return s.console
}

// Done reports whether quit has been run.
func (s *Shell) Done() bool {
	return s.done
}

// Run prompts until quit, end of input or cancellation of ctx. Ctrl+C
// abandons the current line only. End of input is a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	logging.Info("Shell", "Session %s started. Type help for available commands.", s.console.Session())

	for !s.done {
		select {
		case <-ctx.Done():
			logging.Info("Shell", "Shutting down...")
			return nil
		default:
		}

		_, err := s.console.Prompt()
		switch {
		case err == nil:
		case errors.Is(err, console.ErrInterrupted):
			continue
		case errors.Is(err, console.ErrInputExhausted):
			logging.Info("Shell", "Input exhausted")
			return nil
		default:
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	logging.Info("Shell", "Goodbye!")
	return nil
}

func (s *Shell) quit() error {
	s.done = true
	s.console.Println("Bye")
	return nil
}

func (s *Shell) echo(text string) error {
	s.console.Println(text)
	return nil
}

func (s *Shell) add(a, b string) error {
	x, err := strconv.Atoi(a)
	if err != nil {
		return fmt.Errorf("%q is not an integer", a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return fmt.Errorf("%q is not an integer", b)
	}
	s.console.Println(strconv.Itoa(x + y))
	return nil
}

func (s *Shell) enable(name string) error {
	if !s.console.ActivateCommand(name) {
		return fmt.Errorf("no command named %s", name)
	}
	return nil
}

func (s *Shell) disable(name string) error {
	if !s.console.DeactivateCommand(name) {
		return fmt.Errorf("no command named %s", name)
	}
	return nil
}

func (s *Shell) lock() error {
	s.console.DeactivateAllCommands()
	for _, name := range lockedCommands {
		s.console.ActivateCommand(name)
	}
	s.console.Println("Locked. Type unlock to restore all commands")
	return nil
}

func (s *Shell) unlock() error {
	s.console.ActivateAllCommands()
	s.console.Println("Unlocked")
	return nil
}

func (s *Shell) status() error {
	s.console.Println(fmt.Sprintf("%d of %d commands active", len(s.console.ActiveCommands()), len(s.console.Commands())))
	return nil
}
