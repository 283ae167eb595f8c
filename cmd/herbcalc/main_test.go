package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

var testProfileDir = filepath.Join("..", "..", "internal", "profile", "testdata")

type stubPrices struct {
	table domain.PriceTable
	err   error
}

func (s *stubPrices) Snapshot(context.Context) (domain.PriceTable, error) { return s.table, s.err }
func (s *stubPrices) Price(context.Context, domain.ItemID) (int, error)  { return 0, s.err }
func (s *stubPrices) Invalidate()                                        {}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out))
	assert.Contains(t, out.String(), "Usage: herbcalc")

	out.Reset()
	assert.ErrorContains(t, run([]string{"plant"}, &out), "unknown command")
	assert.Contains(t, out.String(), "calc")
}

func TestCalc_Profile(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"calc", "-profile", filepath.Join(testProfileDir, "main.yaml")}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Farming 99, Magic 99, sorted by Profit")
	assert.Contains(t, text, "Torstol")
	assert.NotContains(t, text, "Torstol*")
}

func TestCalc_ByNameJSON(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"calc", "-dir", testProfileDir, "-name", "main", "-sort", "level", "-format", "json"}, &out)
	require.NoError(t, err)

	var decoded struct {
		FarmingLevel int `json:"farming_level"`
		Herbs        []struct {
			Herb string `json:"herb"`
		} `json:"herbs"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 99, decoded.FarmingLevel)
	require.Len(t, decoded.Herbs, len(domain.AllHerbs()))
	// The profile sorts descending, so level order ends with Guam
	assert.Equal(t, "torstol", decoded.Herbs[0].Herb)
	assert.Equal(t, "guam", decoded.Herbs[len(decoded.Herbs)-1].Herb)
}

func TestCalc_NoProfileIsDegraded(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"calc"}, &out))

	text := out.String()
	assert.Contains(t, text, "Farming 1, Magic 1")
	assert.Contains(t, text, "Warnings:")
	assert.Contains(t, text, "Guam*")
}

func TestCalc_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad sort", []string{"calc", "-sort", "weight"}},
		{"bad format", []string{"calc", "-format", "xml"}},
		{"missing profile", []string{"calc", "-dir", testProfileDir, "-name", "hcim"}},
		{"missing file", []string{"calc", "-profile", "nope.yaml"}},
		{"bad flag", []string{"calc", "-compost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(tt.args, &bytes.Buffer{}))
		})
	}
}

func TestCalc_LivePricesFailureWarns(t *testing.T) {
	cmd := &CalcCommand{prices: &stubPrices{
		table: domain.PriceTable{domain.ItemGrimyGuam: 50},
		err:   errors.New("upstream down"),
	}}

	var out bytes.Buffer
	err := cmd.Run([]string{"-profile", filepath.Join(testProfileDir, "ironman.yaml"), "-live-prices"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "prices unavailable (upstream down)")
}

func TestCalc_ProfilePricesOverrideLive(t *testing.T) {
	cmd := &CalcCommand{prices: &stubPrices{table: domain.PriceTable{domain.ItemGrimyRanarr: 1}}}

	prices, warning := cmd.resolvePrices(domain.PriceTable{domain.ItemGrimyRanarr: 7100}, true)

	assert.Empty(t, warning)
	assert.Equal(t, 7100, prices.Price(domain.ItemGrimyRanarr))
}

func TestProfilesAndCatalog(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"profiles", "-dir", testProfileDir}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Main"))
	assert.Contains(t, lines[0], "player=Lynx Titan")
	assert.Contains(t, lines[1], "player=-")

	out.Reset()
	require.NoError(t, run([]string{"catalog"}, &out))
	assert.Contains(t, out.String(), "Dwarf Weed")
	assert.Contains(t, out.String(), "troll_stronghold")
	assert.Contains(t, out.String(), "ultracompost")
}
