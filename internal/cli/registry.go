// Package cli holds the subcommand registry shared by the command-line binaries.
package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Command is the part of a subcommand the registry needs. Each binary extends
// it with its own Run signature.
type Command interface {
	Name() string
	Description() string
}

// Registry holds the subcommands of one program
type Registry[C Command] struct {
	program  string
	usage    string
	commands []C
}

// NewRegistry creates an empty registry. usage is printed after the program
// name in the help header, e.g. "<command> [flags]".
func NewRegistry[C Command](program, usage string) *Registry[C] {
	return &Registry[C]{program: program, usage: usage}
}

// Register adds cmd. Registering two commands under one name is a programming error.
func (r *Registry[C]) Register(cmd C) {
	if _, exists := r.Get(cmd.Name()); exists {
		panic(fmt.Sprintf("%s: duplicate command %s", r.program, cmd.Name()))
	}
	r.commands = append(r.commands, cmd)
}

func (r *Registry[C]) Get(name string) (C, bool) {
	i := slices.IndexFunc(r.commands, func(c C) bool { return c.Name() == name })
	if i < 0 {
		var zero C
		return zero, false
	}
	return r.commands[i], true
}

// Lookup resolves the first argument to a command. On a missing or unknown
// name it writes the help text to w and returns an error.
func (r *Registry[C]) Lookup(args []string, w io.Writer) (C, error) {
	var zero C
	if len(args) == 0 {
		r.PrintHelp(w)
		return zero, fmt.Errorf("no command given")
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		r.PrintHelp(w)
		return zero, fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd, nil
}

// List returns the commands sorted by name
func (r *Registry[C]) List() []C {
	cmds := slices.Clone(r.commands)
	slices.SortFunc(cmds, func(a, b C) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return cmds
}

// PrintHelp writes usage with the descriptions aligned in one column
func (r *Registry[C]) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s %s\n", r.program, r.usage)
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}
