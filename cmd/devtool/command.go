package main

import "github.com/osse101/HerbFarmCalc_Go/internal/cli"

// Command is one devtool subcommand
type Command interface {
	cli.Command
	Run(args []string) error
}

// Registry holds the devtool subcommands
type Registry = cli.Registry[Command]

func NewRegistry() *Registry {
	return cli.NewRegistry[Command]("devtool", "<command> [args...]")
}
