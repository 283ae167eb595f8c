package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHerbCatalog(t *testing.T) {
	herbs := AllHerbs()
	require.Len(t, herbs, 14)

	prev := 0
	for _, h := range herbs {
		info := h.Info()
		assert.Greater(t, info.Level, prev, "%s out of level order", h)
		assert.Less(t, info.MinChanceToSave, MaxChanceToSave)
		assert.Greater(t, info.HarvestXP, info.PlantXP)
		assert.NotEqual(t, NoItem, info.SeedItem)
		assert.NotEqual(t, NoItem, info.GrimyItem)
		prev = info.Level
	}
}

func TestParseHerb(t *testing.T) {
	for _, input := range []string{"dwarf_weed", "Dwarf Weed", "dwarf-weed", "  DWARF WEED "} {
		h, err := ParseHerb(input)
		require.NoError(t, err, input)
		assert.Equal(t, HerbDwarfWeed, h)
	}

	_, err := ParseHerb("belladonna")
	assert.ErrorIs(t, err, ErrUnknownHerb)
}

func TestParsePatch(t *testing.T) {
	p, err := ParsePatch("Troll Stronghold")
	require.NoError(t, err)
	assert.Equal(t, PatchTrollStronghold, p)

	p, err = ParsePatch("farming_guild")
	require.NoError(t, err)
	assert.Equal(t, PatchFarmingGuild, p)

	_, err = ParsePatch("lumbridge")
	assert.ErrorIs(t, err, ErrUnknownPatch)
}

func TestParseCompost(t *testing.T) {
	tests := map[string]Compost{
		"":             CompostNone,
		"none":         CompostNone,
		"compost":      CompostNormal,
		"Supercompost": CompostSuper,
		"ultracompost": CompostUltra,
	}
	for input, expected := range tests {
		c, err := ParseCompost(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, c, input)
	}

	_, err := ParseCompost("bonemeal")
	assert.ErrorIs(t, err, ErrUnknownCompost)
}

func TestCompostCatalog(t *testing.T) {
	assert.Equal(t, 3, CompostNone.Info().HarvestLives)
	assert.Equal(t, 27.0, CompostNone.Info().BaseDiseaseChance)
	assert.Equal(t, NoItem, CompostNone.Info().Item)
	assert.Equal(t, 6, CompostUltra.Info().HarvestLives)
	assert.Equal(t, 36.0, CompostUltra.Info().XP)
}

func TestAnimaPlant(t *testing.T) {
	assert.Equal(t, 0.2, AnimaIasor.DiseaseChanceModifier())
	assert.Equal(t, 1.0, AnimaAttas.DiseaseChanceModifier())
	assert.Equal(t, 0.05, AnimaAttas.ChanceToSaveBonus())
	assert.Zero(t, AnimaKronos.ChanceToSaveBonus())

	a, err := ParseAnimaPlant("Iasor")
	require.NoError(t, err)
	assert.Equal(t, AnimaIasor, a)

	_, err = ParseAnimaPlant("lotus")
	assert.ErrorIs(t, err, ErrUnknownAnimaPlant)
}

func TestParseDiaryTier(t *testing.T) {
	d, err := ParseDiaryTier("Elite")
	require.NoError(t, err)
	assert.Equal(t, DiaryElite, d)
	assert.True(t, DiaryHard > DiaryMedium)

	_, err = ParseDiaryTier("master")
	assert.ErrorIs(t, err, ErrUnknownDiaryTier)
}

func TestTextRoundTrip(t *testing.T) {
	var h Herb
	require.NoError(t, h.UnmarshalText([]byte("snapdragon")))
	text, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "snapdragon", string(text))

	_, err = HerbPatch(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownPatch)
}

func TestPriceTable(t *testing.T) {
	table := PriceTable{ItemGrimyRanarr: 7000, ItemGuamSeed: -5}

	assert.Equal(t, 7000, table.Price(ItemGrimyRanarr))
	assert.Zero(t, table.Price(NoItem))
	assert.Zero(t, table.Price(ItemGrimyTorstol))
	assert.Zero(t, table.Price(ItemGuamSeed))

	merged := table.Merge(PriceTable{ItemGrimyRanarr: 6500, ItemGrimyTorstol: 9000})
	assert.Equal(t, 6500, merged.Price(ItemGrimyRanarr))
	assert.Equal(t, 9000, merged.Price(ItemGrimyTorstol))
	assert.Equal(t, 7000, table.Price(ItemGrimyRanarr))
}

func TestPricedItems(t *testing.T) {
	items := PricedItems()
	assert.Len(t, items, 14*2+3+4)
	assert.NotContains(t, items, NoItem)
}

func TestPlayerState(t *testing.T) {
	var missing *PlayerState
	_, err := missing.SkillLevel(SkillFarming)
	assert.ErrorIs(t, err, ErrUnresolvedSignal)
	_, err = missing.Flag(FlagFaladorDiary)
	assert.ErrorIs(t, err, ErrUnresolvedSignal)

	p := NewPlayerState("zezima")
	_, err = p.SkillLevel(SkillMagic)
	assert.ErrorIs(t, err, ErrUnresolvedSignal)

	p.Skills[SkillMagic] = 94
	level, err := p.SkillLevel(SkillMagic)
	require.NoError(t, err)
	assert.Equal(t, 94, level)

	favor, err := p.Flag(FlagHosidiusFavor)
	require.NoError(t, err)
	assert.Zero(t, favor)
}

func TestPlayerState_Validate(t *testing.T) {
	p := NewPlayerState("zezima")
	p.Skills[SkillFarming] = 99
	p.Flags[FlagHosidiusFavor] = 1000
	p.Flags[FlagKandarinDiary] = int(DiaryElite)
	assert.NoError(t, p.Validate())

	p.Flags[FlagKandarinDiary] = 5
	assert.ErrorIs(t, p.Validate(), ErrInvalidInput)

	p.Flags[FlagKandarinDiary] = 0
	p.Skills["woodcutting"] = 50
	assert.ErrorIs(t, p.Validate(), ErrUnknownSkill)
}

func TestNormalizePlayerName(t *testing.T) {
	assert.Equal(t, "lynx titan", NormalizePlayerName(" Lynx_Titan "))
	assert.Equal(t, "lynx titan", NormalizePlayerName("lynx-titan"))
	assert.Equal(t, "zezima", NormalizePlayerName("Zezima"))
}
