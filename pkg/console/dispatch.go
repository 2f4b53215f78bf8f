package console

import (
	"fmt"
	"slices"

	"github.com/giantswarm/tconsole/pkg/logging"
)

// Dispatcher selects and invokes at most one handler per token sequence.
type Dispatcher struct {
	active *ActiveSet
	log    logging.Logger
}

// NewDispatcher creates a dispatcher over the given active set.
func NewDispatcher(active *ActiveSet, log logging.Logger) *Dispatcher {
	return &Dispatcher{active: active, log: log}
}

// Dispatch matches tokens against the active set and invokes the handler.
//
// Active commands are scanned in set order and, within a command, aliases in
// declared order. The first alias equal to tokens[0] commits the line to that
// command: if the remaining token count equals the command's arity the
// handler runs, otherwise an *ArityMismatchError is returned. No other
// command is tried after a match, even one with a fitting arity.
//
// A blank token sequence runs the designated blank command when it is
// active, and is unrecognized otherwise.
//
// Returned errors: nil, ErrUnrecognizedInput, *ArityMismatchError or
// *HandlerError. Handler panics are converted into *HandlerError.
func (d *Dispatcher) Dispatch(tokens []string) error {
	if len(tokens) == 0 {
		return d.dispatchBlank()
	}

	first := tokens[0]
	rest := tokens[1:]

	for _, cmd := range d.active.Commands() {
		for _, alias := range cmd.aliases {
			if alias != first {
				continue
			}

			if len(rest) != cmd.Arity() {
				d.log.Debug("arity mismatch for %q: expected %d, got %d", alias, cmd.Arity(), len(rest))
				return &ArityMismatchError{Alias: alias, Expected: cmd.Arity(), Actual: len(rest)}
			}

			d.log.Debug("dispatching %q (command %s) with %d args", alias, cmd.Name(), len(rest))
			return invoke(cmd, alias, slices.Clone(rest))
		}
	}

	d.log.Debug("no active command matches %q", first)
	return ErrUnrecognizedInput
}

func (d *Dispatcher) dispatchBlank() error {
	reg := d.active.registry
	cmd, ok := reg.BlankCommand()
	if !ok || !d.active.containsIndex(reg.blank) {
		d.log.Debug("blank input with no active blank command")
		return ErrUnrecognizedInput
	}

	d.log.Debug("blank input dispatched to %s", cmd.Name())
	return invoke(cmd, cmd.Name(), nil)
}

// invoke runs the handler and converts failures into *HandlerError.
func invoke(cmd Command, alias string, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerError{Alias: alias, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if herr := cmd.handler.Invoke(args); herr != nil {
		return &HandlerError{Alias: alias, Err: herr}
	}
	return nil
}
