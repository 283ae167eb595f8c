package main

import (
	"fmt"
	"strings"
)

// dependency describes one tool the development workflow relies on
type dependency struct {
	name     string
	command  []string
	required bool
	install  string
	// version extracts the version from the tool's output
	version func(out string) string
}

func fieldAt(n int, trim string) func(string) string {
	return func(out string) string {
		line, _, _ := strings.Cut(out, "\n")
		parts := strings.Fields(line)
		i := n
		if i < 0 {
			i += len(parts)
		}
		if i < 0 || i >= len(parts) {
			return line
		}
		return strings.TrimPrefix(strings.TrimRight(parts[i], ","), trim)
	}
}

var dependencies = []dependency{
	{"Go", []string{"go", "version"}, true, "https://go.dev/dl/", fieldAt(2, "go")},
	{"Docker", []string{"docker", "--version"}, true, "https://docs.docker.com/get-docker/", fieldAt(2, "")},
	{"Docker Compose", []string{"docker", "compose", "version"}, false, "bundled with Docker Desktop", fieldAt(-1, "")},
	{"Goose", []string{"go", "run", "github.com/pressly/goose/v3/cmd/goose", "--version"}, false, "go mod download", fieldAt(-1, "version:")},
	{"Swag", []string{"go", "run", "github.com/swaggo/swag/cmd/swag", "--version"}, false, "go mod download", fieldAt(-1, "v")},
	{"Mockery", []string{"go", "run", "github.com/vektra/mockery/v2", "--version"}, false, "go mod download", fieldAt(-1, "v")},
}

type CheckDepsCommand struct {
	// output runs a dependency probe; nil uses getCommandOutput
	output func(name string, args ...string) (string, error)
}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check that required development tools are installed"
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies")

	probe := c.output
	if probe == nil {
		probe = getCommandOutput
	}

	var missing []string
	for _, dep := range dependencies {
		out, err := probe(dep.command[0], dep.command[1:]...)
		switch {
		case err == nil:
			PrintSuccess("%s installed: %s", dep.name, dep.version(out))
		case dep.required:
			PrintError("%s not found (install: %s)", dep.name, dep.install)
			missing = append(missing, dep.name)
		default:
			PrintWarning("%s not found, optional (install: %s)", dep.name, dep.install)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	PrintSuccess("Environment check complete")
	return nil
}
