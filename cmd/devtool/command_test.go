package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := newRegistry()

	cmd, ok := registry.Get("migrate")
	require.True(t, ok)
	assert.Equal(t, "migrate", cmd.Name())

	_, ok = registry.Get("deploy")
	assert.False(t, ok)

	names := make([]string, 0)
	for _, c := range registry.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"bench", "check-coverage", "check-deps", "health-check", "migrate", "seed", "wait-for-db"}, names)
}

func TestRegistry_PrintHelp(t *testing.T) {
	var buf bytes.Buffer
	newRegistry().PrintHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: devtool <command>")
	assert.Contains(t, out, "  check-coverage  Run tests with coverage")
	assert.Contains(t, out, "  seed            Seed stored players")
}

func TestCheckHostile(t *testing.T) {
	assert.NoError(t, checkHostile("go", "test", "-run=^$", "./..."))

	for _, bad := range []string{"a; rm -rf /", "$(whoami)", "x && y", "line\nbreak", "out > file"} {
		assert.Error(t, checkHostile(bad), bad)
	}
}

func TestColorize_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "plain", colorize(colorRed, "plain"))

	t.Setenv("NO_COLOR", "")
	assert.Equal(t, colorRed+"red"+colorReset, colorize(colorRed, "red"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&SeedCommand{})
	assert.PanicsWithValue(t, "devtool: duplicate command seed", func() { registry.Register(&SeedCommand{}) })
}
