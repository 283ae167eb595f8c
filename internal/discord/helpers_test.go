package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// DiscordCall is one captured request to the Discord REST API
type DiscordCall struct {
	Method string
	Path   string
	Body   string
}

// TestContext wires a mock calculator API and a Discord session whose REST calls are captured
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu    sync.Mutex
	calls []DiscordCall
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = 0

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			tc.mu.Lock()
			tc.calls = append(tc.calls, DiscordCall{Method: req.Method, Path: req.URL.Path, Body: string(body)})
			tc.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		},
	}}

	t.Cleanup(server.Close)
	return tc
}

// Calls returns the captured Discord requests
func (tc *TestContext) Calls() []DiscordCall {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]DiscordCall(nil), tc.calls...)
}

// LastEdit returns the body of the last edit to the original response
func (tc *TestContext) LastEdit(t *testing.T) string {
	t.Helper()
	calls := tc.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == http.MethodPatch && strings.HasSuffix(calls[i].Path, "/messages/@original") {
			return calls[i].Body
		}
	}
	t.Fatal("no interaction edit captured")
	return ""
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func newInteraction(kind discordgo.InteractionType, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:    "interaction-id",
		AppID: "app-id",
		Token: "interaction-token",
		Type:  kind,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
		},
		Member: &discordgo.Member{User: &discordgo.User{ID: "42", Username: "tester"}},
	}}
}

func newCommand(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return newInteraction(discordgo.InteractionApplicationCommand, name, options...)
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func boolOpt(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: value}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord sends every number as a JSON float
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func sampleResult(warnings ...string) *domain.CalculatorResult {
	return &domain.CalculatorResult{
		FarmingLevel: 90,
		MagicLevel:   80,
		Patches:      []domain.PatchBuffs{{Patch: domain.PatchCatherby, YieldBonus: 0.1}},
		Herbs: []domain.HerbResult{
			{Herb: domain.HerbRanarr, Patches: []domain.HerbPatchResult{{
				Herb: domain.HerbRanarr, Patch: domain.PatchCatherby,
				SurvivalChance: 0.9, ExpectedYield: 8, ExpectedXP: 300, Cost: 40000, Revenue: 56000,
			}}},
			{Herb: domain.HerbTorstol, Patches: []domain.HerbPatchResult{{
				Herb: domain.HerbTorstol, Patch: domain.PatchCatherby,
				SurvivalChance: 0.85, ExpectedYield: 7, ExpectedXP: 1900, Cost: 60000, Revenue: 70000,
			}}},
		},
		Warnings: warnings,
	}
}
