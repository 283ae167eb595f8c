// Command herbcalc runs the herb calculator offline from a YAML profile.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

func main() {
	_ = godotenv.Load()

	logger.InitLoggerWithWriter(logger.CLIConfig(os.Getenv("LOG_LEVEL")), os.Stderr)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&CalcCommand{})
	registry.Register(&ProfilesCommand{})
	registry.Register(&CatalogCommand{})
	return registry
}

func run(args []string, out io.Writer) error {
	cmd, err := newRegistry().Lookup(args, out)
	if err != nil {
		return err
	}
	return cmd.Run(args[1:], out)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
