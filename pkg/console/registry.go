package console

import (
	"slices"
)

// Registry is the complete, immutable set of commands, in registration order.
type Registry struct {
	commands []Command
	// blank is the index of the command run on blank input, or -1.
	blank int
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// At returns the command at index i.
func (r *Registry) At(i int) Command {
	return r.commands[i]
}

// Commands returns a copy of all commands in registration order.
func (r *Registry) Commands() []Command {
	return slices.Clone(r.commands)
}

// Lookup returns the index of the first command owning name as an alias.
func (r *Registry) Lookup(name string) (int, bool) {
	for i, cmd := range r.commands {
		if cmd.HasAlias(name) {
			return i, true
		}
	}
	return -1, false
}

// BlankCommand returns the command designated for blank input, if any.
func (r *Registry) BlankCommand() (Command, bool) {
	if r.blank < 0 {
		return Command{}, false
	}
	return r.commands[r.blank], true
}

// Builder collects command definitions at setup time and produces an
// immutable Registry. A Builder must not be reused after Build.
type Builder struct {
	commands  []Command
	err       error
	blankName string
	noHelp    bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register appends a command definition. The first alias is canonical and
// is what help prints. Info defaults to DefaultInfoText when empty.
//
// Alias uniqueness is not enforced: when two commands share an alias, the
// one earlier in the active set wins at dispatch time.
//
// A failed Register is also remembered and reported again by Build.
func (b *Builder) Register(aliases []string, handler Handler, info string) error {
	cmd, err := newCommand(aliases, handler, info)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	b.commands = append(b.commands, cmd)
	return nil
}

// MustRegister is like Register but panics on an invalid definition.
// Intended for static command tables.
func (b *Builder) MustRegister(aliases []string, handler Handler, info string) *Builder {
	if err := b.Register(aliases, handler, info); err != nil {
		panic(err)
	}
	return b
}

// SetBlankCommand designates the zero-arity command, by alias, that runs
// when a blank line is entered. Without one, blank input is unrecognized.
func (b *Builder) SetBlankCommand(name string) *Builder {
	b.blankName = name
	return b
}

// WithoutHelp disables the builtin help command.
func (b *Builder) WithoutHelp() *Builder {
	b.noHelp = true
	return b
}

// buildRegistry validates the collected definitions. help is the builtin
// help command appended last, or nil.
func (b *Builder) buildRegistry(help *Command) (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	commands := slices.Clone(b.commands)
	if help != nil && !b.noHelp {
		commands = append(commands, *help)
	}

	reg := &Registry{commands: commands, blank: -1}

	if b.blankName != "" {
		idx, ok := reg.Lookup(b.blankName)
		if !ok {
			return nil, &InvalidCommandSpecError{
				Aliases: []string{b.blankName},
				Reason:  "blank command is not registered",
			}
		}
		if arity := reg.commands[idx].Arity(); arity != 0 {
			return nil, &InvalidCommandSpecError{
				Aliases: reg.commands[idx].Aliases(),
				Reason:  "blank command must take 0 arguments",
			}
		}
		reg.blank = idx
	}

	return reg, nil
}

// aliasCollisions returns, for every alias owned by more than one command,
// the canonical names of the owners in registration order.
func (r *Registry) aliasCollisions() map[string][]string {
	owners := make(map[string][]string)
	for _, cmd := range r.commands {
		for _, alias := range cmd.aliases {
			if !slices.Contains(owners[alias], cmd.Name()) {
				owners[alias] = append(owners[alias], cmd.Name())
			}
		}
	}
	for alias, names := range owners {
		if len(names) < 2 {
			delete(owners, alias)
		}
	}
	return owners
}
