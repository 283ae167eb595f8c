package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/osse101/HerbFarmCalc_Go/internal/profile"
)

// ProfilesCommand lists the profiles in a directory
type ProfilesCommand struct{}

func (c *ProfilesCommand) Name() string {
	return "profiles"
}

func (c *ProfilesCommand) Description() string {
	return "List saved profiles"
}

func (c *ProfilesCommand) Run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", "profiles", "profile directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loader := profile.NewLoader(*dir)
	names, err := loader.Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		p, err := loader.Get(name)
		if err != nil {
			return err
		}
		player := "-"
		if p.Player != nil && p.Player.Name != "" {
			player = p.Player.Name
		}
		fmt.Fprintf(out, "%-20s player=%s patches=%d compost=%s sort=%s\n",
			p.Name, player, len(p.Options.Patches), p.Options.Compost, p.Sort)
	}
	return nil
}
