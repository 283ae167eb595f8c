package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&CheckDepsCommand{})
	registry.Register(&WaitForDBCommand{})
	registry.Register(&MigrateCommand{})
	registry.Register(&SeedCommand{})
	registry.Register(&HealthCheckCommand{})
	registry.Register(&CheckCoverageCommand{})
	registry.Register(&BenchCommand{})
	return registry
}

func main() {
	_ = godotenv.Load()

	cmd, err := newRegistry().Lookup(os.Args[1:], os.Stdout)
	if err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

// getEnv returns an environment variable or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func usageError(usage string) error {
	return fmt.Errorf("usage: devtool %s", usage)
}
