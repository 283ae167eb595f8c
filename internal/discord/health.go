package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/osse101/HerbFarmCalc_Go/internal/metrics"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

const healthCheckTimeout = 2 * time.Second

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand counts a received slash command
func RecordCommand(name string) {
	metrics.DiscordCommandsTotal.WithLabelValues(name).Inc()
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		apiReachable = h.bot.Client.Healthz(ctx) == nil
		cancel()
	}

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Truncate(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		APIReachable:     apiReachable,
	}
	if nano := lastCommandNano.Load(); nano > 0 {
		last := time.Unix(0, nano)
		health.LastCommandTime = &last
	}

	status := http.StatusOK
	if !connected || !apiReachable {
		health.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug(LogMsgHealthWriteFailed, "error", err)
	}
}
