package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	benchResultsDir = "benchmarks/results"
	benchBaseline   = "baseline.txt"
	benchHotPackage = "./benchmarks/calculator"
)

var benchFlags = []string{"-run=^$", "-bench=.", "-benchmem", "-benchtime=2s"}

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run and compare benchmarks (run, hot, save, baseline, compare)"
}

func (c *BenchCommand) Run(args []string) error {
	subcmd := "run"
	if len(args) > 0 {
		subcmd = args[0]
	}

	switch subcmd {
	case "run":
		PrintHeader("Running all benchmarks")
		return runCommandVerbose("go", benchArgs("./...")...)
	case "hot":
		PrintHeader("Running calculator benchmarks")
		return runCommandVerbose("go", benchArgs(benchHotPackage)...)
	case "save":
		_, err := c.runAndSave(time.Now().Format("20060102-150405")+".txt", stdout)
		return err
	case "baseline":
		_, err := c.runAndSave(benchBaseline, stdout)
		return err
	case "compare":
		return c.compare()
	default:
		return usageError("bench <run|hot|save|baseline|compare>")
	}
}

func benchArgs(pkg string) []string {
	return append(append([]string{"test"}, benchFlags...), pkg)
}

// runAndSave runs every benchmark, writing the output to a results file and echo
func (c *BenchCommand) runAndSave(filename string, echo io.Writer) (string, error) {
	if err := os.MkdirAll(benchResultsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(benchResultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := runCommandTo(io.MultiWriter(echo, f), "go", benchArgs("./...")...); err != nil {
		return path, fmt.Errorf("benchmark execution failed: %w", err)
	}
	PrintSuccess("Results saved to %s", path)
	return path, nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(benchResultsDir, benchBaseline)
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found, run 'devtool bench baseline' first")
	}

	PrintHeader("Comparing benchmarks to baseline")
	current, err := c.runAndSave("current.txt", io.Discard)
	if err != nil {
		return err
	}
	return runCommandVerbose("go", "run", "golang.org/x/perf/cmd/benchstat", baseline, current)
}
