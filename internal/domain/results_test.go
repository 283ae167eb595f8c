package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHerbResult(herb Herb, profits ...float64) HerbResult {
	r := HerbResult{Herb: herb}
	for i, p := range profits {
		r.Patches = append(r.Patches, HerbPatchResult{
			Herb:           herb,
			Patch:          HerbPatch(i),
			SurvivalChance: 0.5 + 0.25*float64(i%2),
			ExpectedYield:  float64(i + 1),
			ExpectedXP:     100,
			Cost:           1000,
			Revenue:        1000 + p,
		})
	}
	return r
}

func TestHerbResult_Aggregates(t *testing.T) {
	r := sampleHerbResult(HerbRanarr, 500, -200)

	assert.InDelta(t, 0.625, r.SurvivalChance(), 1e-12)
	assert.InDelta(t, 3.0, r.ExpectedYield(), 1e-12)
	assert.InDelta(t, 200.0, r.ExpectedXP(), 1e-12)
	assert.InDelta(t, 2000.0, r.Cost(), 1e-12)
	assert.InDelta(t, 2300.0, r.Revenue(), 1e-12)
	assert.InDelta(t, 300.0, r.Profit(), 1e-12)
}

func TestHerbResult_Empty(t *testing.T) {
	r := HerbResult{Herb: HerbGuam}
	assert.Zero(t, r.SurvivalChance())
	assert.Zero(t, r.Profit())
}

func TestHerbResult_Growable(t *testing.T) {
	r := HerbResult{Herb: HerbRanarr}
	assert.False(t, r.Growable(31))
	assert.True(t, r.Growable(32))
}

func TestHerbPatchResult_JSONIncludesProfit(t *testing.T) {
	pr := HerbPatchResult{Herb: HerbGuam, Patch: PatchWeiss, Cost: 10, Revenue: 25}

	data, err := json.Marshal(pr)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "guam", decoded["herb"])
	assert.Equal(t, "weiss", decoded["patch"])
	assert.Equal(t, 15.0, decoded["profit"])
}

func TestHerbResult_JSONIncludesAggregates(t *testing.T) {
	data, err := json.Marshal(sampleHerbResult(HerbDwarfWeed, 100))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Dwarf Weed", decoded["name"])
	assert.Equal(t, 79.0, decoded["level"])
	assert.Equal(t, 100.0, decoded["profit"])
	assert.Len(t, decoded["patches"], 1)
}

func TestPatchBuffs_Description(t *testing.T) {
	tests := []struct {
		buffs    PatchBuffs
		expected string
	}{
		{PatchBuffs{Patch: PatchArdougne}, "Ardougne"},
		{PatchBuffs{Patch: PatchCatherby, YieldBonus: 0.10}, "Catherby (+10% yield)"},
		{PatchBuffs{Patch: PatchWeiss, DiseaseFree: true}, "Weiss (disease-free)"},
		{PatchBuffs{Patch: PatchFalador, XPBonus: 0.10}, "Falador (+10% XP)"},
		{PatchBuffs{Patch: PatchHosidius, DiseaseFree: true, YieldBonus: 0.05}, "Hosidius (disease-free, +5% yield)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.buffs.Description())
	}
}
