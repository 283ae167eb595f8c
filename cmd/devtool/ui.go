package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// stdout is swapped in tests
var stdout io.Writer = os.Stdout

// colorize wraps text in an ANSI color unless NO_COLOR is set
func colorize(color, text string) string {
	if os.Getenv("NO_COLOR") != "" {
		return text
	}
	return color + text + colorReset
}

func PrintInfo(format string, a ...any) {
	fmt.Fprintln(stdout, colorize(colorBlue, "ℹ "+fmt.Sprintf(format, a...)))
}

func PrintSuccess(format string, a ...any) {
	fmt.Fprintln(stdout, colorize(colorGreen, "✓ "+fmt.Sprintf(format, a...)))
}

func PrintWarning(format string, a ...any) {
	fmt.Fprintln(stdout, colorize(colorYellow, "⚠ "+fmt.Sprintf(format, a...)))
}

func PrintError(format string, a ...any) {
	fmt.Fprintln(stdout, colorize(colorRed, "✗ "+fmt.Sprintf(format, a...)))
}

func PrintHeader(title string) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, colorize(colorYellow, "=== "+title+" ==="))
}

// checkHostile rejects arguments carrying newlines, null bytes or shell metacharacters
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r\x00") {
			return fmt.Errorf("hostile input detected in %q", s)
		}
		for _, p := range []string{"|", "`", "$(", "&&", "||", ">", "<", ";"} {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func getCommandOutput(name string, args ...string) (string, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - arguments checked above
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommandTo runs a command with stdout and stderr sent to w
func runCommandTo(w io.Writer, name string, args ...string) error {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments checked above
	cmd := exec.Command(name, args...)
	cmd.Stdout = w
	cmd.Stderr = w
	return cmd.Run()
}

// runCommandVerbose runs a command with output on the terminal
func runCommandVerbose(name string, args ...string) error {
	return runCommandTo(stdout, name, args...)
}
