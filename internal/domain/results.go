package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PatchBuffs is a herb patch paired with its patch-specific buffs.
// Item buffs (secateurs, cape) and anima buffs are global and not included.
type PatchBuffs struct {
	Patch       HerbPatch `json:"patch"`
	DiseaseFree bool      `json:"disease_free"`
	YieldBonus  float64   `json:"yield_bonus"`
	XPBonus     float64   `json:"xp_bonus"`
}

// Description renders the patch name with its active buffs, e.g. "Catherby (+10% yield)"
func (b PatchBuffs) Description() string {
	var parts []string
	if b.DiseaseFree {
		parts = append(parts, "disease-free")
	}
	if b.YieldBonus > 0 {
		parts = append(parts, fmt.Sprintf("+%.0f%% yield", b.YieldBonus*100))
	}
	if b.XPBonus > 0 {
		parts = append(parts, fmt.Sprintf("+%.0f%% XP", b.XPBonus*100))
	}
	if len(parts) == 0 {
		return b.Patch.Name()
	}
	return fmt.Sprintf("%s (%s)", b.Patch.Name(), strings.Join(parts, ", "))
}

// MarshalJSON includes the rendered description
func (b PatchBuffs) MarshalJSON() ([]byte, error) {
	type alias PatchBuffs
	return json.Marshal(struct {
		alias
		Description string `json:"description"`
	}{alias(b), b.Description()})
}

// HerbPatchResult is the expected outcome of one herb planted in one patch
type HerbPatchResult struct {
	Herb           Herb      `json:"herb"`
	Patch          HerbPatch `json:"patch"`
	SurvivalChance float64   `json:"survival_chance"`
	ExpectedYield  float64   `json:"expected_yield"`
	ExpectedXP     float64   `json:"expected_xp"`
	Cost           float64   `json:"cost"`
	Revenue        float64   `json:"revenue"`
}

// Profit is always derived from revenue and cost
func (r HerbPatchResult) Profit() float64 {
	return r.Revenue - r.Cost
}

// MarshalJSON includes the derived profit
func (r HerbPatchResult) MarshalJSON() ([]byte, error) {
	type alias HerbPatchResult
	return json.Marshal(struct {
		alias
		Profit float64 `json:"profit"`
	}{alias(r), r.Profit()})
}

// HerbResult aggregates one herb across every farmed patch
type HerbResult struct {
	Herb    Herb              `json:"herb"`
	Patches []HerbPatchResult `json:"patches"`
}

// SurvivalChance is the mean survival chance across patches
func (r HerbResult) SurvivalChance() float64 {
	if len(r.Patches) == 0 {
		return 0
	}
	var total float64
	for _, p := range r.Patches {
		total += p.SurvivalChance
	}
	return total / float64(len(r.Patches))
}

func (r HerbResult) ExpectedYield() float64 {
	var total float64
	for _, p := range r.Patches {
		total += p.ExpectedYield
	}
	return total
}

func (r HerbResult) ExpectedXP() float64 {
	var total float64
	for _, p := range r.Patches {
		total += p.ExpectedXP
	}
	return total
}

func (r HerbResult) Cost() float64 {
	var total float64
	for _, p := range r.Patches {
		total += p.Cost
	}
	return total
}

func (r HerbResult) Revenue() float64 {
	var total float64
	for _, p := range r.Patches {
		total += p.Revenue
	}
	return total
}

// Profit is the sum of each patch's profit
func (r HerbResult) Profit() float64 {
	var total float64
	for _, p := range r.Patches {
		total += p.Profit()
	}
	return total
}

// Growable reports whether a player at the given Farming level can plant the herb
func (r HerbResult) Growable(farmingLevel int) bool {
	return farmingLevel >= r.Herb.Info().Level
}

func (r HerbResult) String() string {
	return fmt.Sprintf("%s: %.2f%% survival / %.2f yield / %.1f XP / %.0f gp",
		r.Herb.Name(), r.SurvivalChance()*100.0, r.ExpectedYield(), r.ExpectedXP(), r.Profit())
}

// MarshalJSON includes the aggregates
func (r HerbResult) MarshalJSON() ([]byte, error) {
	type alias HerbResult
	return json.Marshal(struct {
		alias
		Name           string  `json:"name"`
		Level          int     `json:"level"`
		SurvivalChance float64 `json:"survival_chance"`
		ExpectedYield  float64 `json:"expected_yield"`
		ExpectedXP     float64 `json:"expected_xp"`
		Cost           float64 `json:"cost"`
		Revenue        float64 `json:"revenue"`
		Profit         float64 `json:"profit"`
	}{
		alias:          alias(r),
		Name:           r.Herb.Name(),
		Level:          r.Herb.Info().Level,
		SurvivalChance: r.SurvivalChance(),
		ExpectedYield:  r.ExpectedYield(),
		ExpectedXP:     r.ExpectedXP(),
		Cost:           r.Cost(),
		Revenue:        r.Revenue(),
		Profit:         r.Profit(),
	})
}

// CalculatorResult is the full output of one calculator run
type CalculatorResult struct {
	FarmingLevel int          `json:"farming_level"`
	MagicLevel   int          `json:"magic_level"`
	Patches      []PatchBuffs `json:"patches"`
	Herbs        []HerbResult `json:"herbs"`
	// Warnings lists every input that could not be resolved and the fallback used
	Warnings []string `json:"warnings,omitempty"`
}

// Degraded reports whether any signal fell back to its floor value
func (r *CalculatorResult) Degraded() bool {
	return len(r.Warnings) > 0
}
