package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const slowResponseThreshold = time.Second

type HealthCheckCommand struct {
	client *http.Client
}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe a running API's liveness and readiness endpoints"
}

func (c *HealthCheckCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	baseURL := fs.String("url", getEnv("API_URL", "http://localhost:8080"), "API base URL")
	timeout := fs.Duration("timeout", 5*time.Second, "Per-request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client := c.client
	if client == nil {
		client = &http.Client{Timeout: *timeout}
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", *baseURL))

	for _, path := range []string{"/healthz", "/readyz"} {
		duration, err := probe(context.Background(), client, strings.TrimRight(*baseURL, "/")+path)
		if err != nil {
			PrintError("%s: %v", path, err)
			return err
		}
		if duration > slowResponseThreshold {
			PrintWarning("%s slow response (%v)", path, duration)
		} else {
			PrintSuccess("%s ok (%v)", path, duration)
		}
	}
	return nil
}

// probe issues a GET and fails on any non-200 status
func probe(ctx context.Context, client *http.Client, url string) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	duration := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		return duration, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return duration, nil
}
