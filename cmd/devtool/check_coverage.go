package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultCoverageFile      = "logs/coverage.out"
	defaultCoverageThreshold = 80.0
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

type coverageConfig struct {
	file      string
	threshold float64
	runTests  bool
	html      bool
	packages  []string
}

func (c *CheckCoverageCommand) Run(args []string) error {
	cfg, err := parseCoverageArgs(args)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)", cfg.threshold))

	if err := ensureCoverage(cfg); err != nil {
		return err
	}

	out, err := getCommandOutput("go", "tool", "cover", "-func="+cfg.file)
	if err != nil {
		return fmt.Errorf("error running go tool cover: %w", err)
	}
	coverage, err := parseCoverageTotal(out)
	if err != nil {
		return err
	}
	PrintInfo("Total Coverage: %.1f%%", coverage)

	if cfg.html {
		htmlFile := strings.TrimSuffix(cfg.file, ".out") + ".html"
		if err := runCommandVerbose("go", "tool", "cover", "-html="+cfg.file, "-o", htmlFile); err != nil {
			PrintWarning("Failed to generate HTML report: %v", err)
		} else {
			PrintSuccess("HTML report generated: %s", htmlFile)
		}
	}

	if coverage < cfg.threshold {
		return fmt.Errorf("coverage %.1f%% below threshold %.1f%%", coverage, cfg.threshold)
	}
	PrintSuccess("Coverage meets threshold.")
	return nil
}

// parseCoverageArgs reads [flags] [file] [threshold] [packages...]
func parseCoverageArgs(args []string) (coverageConfig, error) {
	cfg := coverageConfig{file: defaultCoverageFile, threshold: defaultCoverageThreshold}

	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	fs.BoolVar(&cfg.runTests, "run", false, "Run tests before checking coverage")
	fs.BoolVar(&cfg.html, "html", false, "Generate an HTML coverage report")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	positional := fs.Args()
	if len(positional) > 0 {
		cfg.file = filepath.Clean(positional[0])
	}
	if len(positional) > 1 {
		threshold, err := strconv.ParseFloat(positional[1], 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid threshold %q", positional[1])
		}
		cfg.threshold = threshold
	}
	if len(positional) > 2 {
		cfg.packages = positional[2:]
	}

	if strings.Contains(cfg.file, "..") || filepath.IsAbs(cfg.file) {
		return cfg, fmt.Errorf("invalid path %q: must be relative and within project", cfg.file)
	}
	if err := checkHostile(append([]string{cfg.file}, cfg.packages...)...); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseCoverageTotal extracts the percentage from the "total:" line of go tool cover -func
func parseCoverageTotal(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		coverage, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage %q", pct)
		}
		return coverage, nil
	}
	return 0, fmt.Errorf("could not determine coverage from output")
}

func ensureCoverage(cfg coverageConfig) error {
	shouldRun := cfg.runTests || len(cfg.packages) > 0
	if _, err := os.Stat(cfg.file); os.IsNotExist(err) {
		PrintInfo("Coverage file %q not found. Running tests...", cfg.file)
		shouldRun = true
	}
	if !shouldRun {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.file), 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	packages := cfg.packages
	if len(packages) == 0 {
		packages = []string{"./..."}
	}
	testArgs := append([]string{"test"}, packages...)
	testArgs = append(testArgs, "-coverprofile="+cfg.file, "-covermode=atomic", "-race")

	PrintInfo("Running tests with coverage...")
	if err := runCommandVerbose("go", testArgs...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	return nil
}
