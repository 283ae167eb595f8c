package discord

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

func TestHerbsCommand_Definition(t *testing.T) {
	cmd, handler := HerbsCommand()
	assert.Equal(t, "herbs", cmd.Name)
	assert.NotNil(t, handler)

	sort := cmd.Options[0]
	require.Equal(t, OptionSort, sort.Name)
	require.Len(t, sort.Choices, len(domain.AllSortCriteria))
	assert.Equal(t, "Alphabetical", sort.Choices[0].Name)
	assert.Equal(t, "xp", sort.Choices[len(sort.Choices)-1].Value)

	compost := cmd.Options[3]
	require.Equal(t, OptionCompost, compost.Name)
	assert.Equal(t, "ultracompost", compost.Choices[len(compost.Choices)-1].Value)
}

func TestBuildCalculateRequest(t *testing.T) {
	req, err := buildCalculateRequest(optionMap(nil))
	require.NoError(t, err)
	assert.Equal(t, calculator.DefaultOptions(), req.Options)
	assert.Empty(t, req.Sort)

	req, err = buildCalculateRequest(optionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOpt(OptionSort, "profit"),
		stringOpt(OptionPlayer, "Zezima"),
		boolOpt(OptionDescending, true),
		stringOpt(OptionCompost, "supercompost"),
		boolOpt(OptionResurrect, true),
	}))
	require.NoError(t, err)
	assert.Equal(t, "profit", req.Sort)
	assert.Equal(t, "Zezima", req.Player)
	assert.True(t, req.Descending)
	assert.Equal(t, domain.CompostSuper, req.Options.Compost)
	assert.True(t, req.Options.ResurrectCrops)

	_, err = buildCalculateRequest(optionMap([]*discordgo.ApplicationCommandInteractionDataOption{stringOpt(OptionSort, "weight")}))
	assert.ErrorIs(t, err, domain.ErrUnknownSortCriteria)
}

func TestHerbsCommand_Handler(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/calculate", func(w http.ResponseWriter, r *http.Request) {
		var req CalculateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "zezima", req.Player)
		assert.Equal(t, "profit", req.Sort)
		WriteJSON(w, http.StatusOK, sampleResult())
	})

	_, handler := HerbsCommand()
	handler(tc.Session, newCommand("herbs", stringOpt(OptionSort, "profit"), stringOpt(OptionPlayer, "zezima")), tc.APIClient)

	calls := tc.Calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, http.MethodPost, calls[0].Method, "interaction is deferred first")
	assert.Contains(t, calls[0].Path, "/callback")

	edit := tc.LastEdit(t)
	assert.Contains(t, edit, "Herb Run for zezima")
	assert.Contains(t, edit, "Ranarr")
	assert.Contains(t, edit, "Torstol")
	assert.Contains(t, edit, "sorted by Profit")
	assert.Contains(t, edit, fmt.Sprintf(`"color":%d`, ColorHerbs))
}

func TestHerbsCommand_DegradedColor(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/calculate", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, sampleResult("farming level unresolved, using 1"))
	})

	_, handler := HerbsCommand()
	handler(tc.Session, newCommand("herbs"), tc.APIClient)

	edit := tc.LastEdit(t)
	assert.Contains(t, edit, fmt.Sprintf(`"color":%d`, ColorDegraded))
	assert.Contains(t, edit, "farming level unresolved")
}

func TestHerbsCommand_APIError(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/calculate", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
	})

	_, handler := HerbsCommand()
	handler(tc.Session, newCommand("herbs", stringOpt(OptionPlayer, "nobody")), tc.APIClient)

	assert.Contains(t, tc.LastEdit(t), "Player Not Found")
}

func TestHerbsCommand_InvalidOption(t *testing.T) {
	tc := SetupTestContext(t)

	_, handler := HerbsCommand()
	handler(tc.Session, newCommand("herbs", stringOpt(OptionCompost, "bonemeal")), tc.APIClient)

	assert.Contains(t, tc.LastEdit(t), "Invalid Options")
}
