package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestCheckDeps_AllPresent(t *testing.T) {
	out := captureOutput(t)
	cmd := &CheckDepsCommand{output: func(name string, args ...string) (string, error) {
		switch {
		case name == "docker" && args[0] == "--version":
			return "Docker version 24.0.5, build ced0996", nil
		case name == "docker":
			return "Docker Compose version v2.20.2", nil
		case len(args) > 1 && args[1] == "github.com/pressly/goose/v3/cmd/goose":
			return "goose version:v3.26.0", nil
		case args[0] == "version":
			return "go version go1.24.0 linux/amd64", nil
		default:
			return "tool version v1.2.3", nil
		}
	}}

	require.NoError(t, cmd.Run(nil))
	assert.Contains(t, out.String(), "Go installed: 1.24.0")
	assert.Contains(t, out.String(), "Docker installed: 24.0.5")
	assert.Contains(t, out.String(), "Docker Compose installed: v2.20.2")
	assert.Contains(t, out.String(), "Goose installed: v3.26.0")
}

func TestCheckDeps_MissingRequired(t *testing.T) {
	out := captureOutput(t)
	cmd := &CheckDepsCommand{output: func(name string, args ...string) (string, error) {
		if name == "docker" {
			return "", errors.New("not found")
		}
		return "go version go1.24.0 linux/amd64", nil
	}}

	err := cmd.Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Docker")
	assert.NotContains(t, err.Error(), "Docker Compose")
	assert.Contains(t, out.String(), "Docker Compose not found, optional")
}

func TestFieldAt(t *testing.T) {
	last := fieldAt(-1, "")
	assert.Equal(t, "b", last("a b"))
	assert.Equal(t, "c", last("a b c"))
	assert.Equal(t, "", last(""))
}
