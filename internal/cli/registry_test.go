package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	name, description string
}

func (c stubCommand) Name() string        { return c.name }
func (c stubCommand) Description() string { return c.description }

func newTestRegistry() *Registry[stubCommand] {
	r := NewRegistry[stubCommand]("tool", "<command> [flags]")
	r.Register(stubCommand{"seed", "Seed things"})
	r.Register(stubCommand{"check-coverage", "Check coverage"})
	r.Register(stubCommand{"bench", "Run benchmarks"})
	return r
}

func TestRegistry_GetAndList(t *testing.T) {
	r := newTestRegistry()

	cmd, ok := r.Get("seed")
	require.True(t, ok)
	assert.Equal(t, "Seed things", cmd.Description())

	_, ok = r.Get("deploy")
	assert.False(t, ok)

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"bench", "check-coverage", "seed"}, names)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := newTestRegistry()
	assert.PanicsWithValue(t, "tool: duplicate command seed", func() {
		r.Register(stubCommand{"seed", "again"})
	})
}

func TestRegistry_PrintHelp(t *testing.T) {
	var buf bytes.Buffer
	newTestRegistry().PrintHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: tool <command> [flags]")
	assert.Contains(t, out, "  bench           Run benchmarks")
	assert.Contains(t, out, "  check-coverage  Check coverage")
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry()

	var buf bytes.Buffer
	cmd, err := r.Lookup([]string{"bench", "-count=3"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "bench", cmd.Name())
	assert.Empty(t, buf.String())

	_, err = r.Lookup(nil, &buf)
	assert.EqualError(t, err, "no command given")
	assert.Contains(t, buf.String(), "Available Commands:")

	buf.Reset()
	_, err = r.Lookup([]string{"deploy"}, &buf)
	assert.EqualError(t, err, "unknown command: deploy")
	assert.Contains(t, buf.String(), "Usage: tool")
}
