package main

import (
	"io"

	"github.com/osse101/HerbFarmCalc_Go/internal/cli"
)

// Command is one herbcalc subcommand. Results go to out so tests can capture them.
type Command interface {
	cli.Command
	Run(args []string, out io.Writer) error
}

// Registry holds the herbcalc subcommands
type Registry = cli.Registry[Command]

func NewRegistry() *Registry {
	return cli.NewRegistry[Command]("herbcalc", "<command> [flags]")
}
