package calculator

import (
	"fmt"
	"sort"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/utils"
)

// GameState answers skill and flag lookups for the current player.
// Implementations must return errors wrapping domain.ErrUnresolvedSignal
// when a value cannot be read.
type GameState interface {
	SkillLevel(skill domain.Skill) (int, error)
	Flag(flag domain.Flag) (int, error)
}

// Signals holds every external game value the calculator reads, already resolved
type Signals struct {
	FarmingLevel  int
	MagicLevel    int
	KandarinDiary domain.DiaryTier
	KourendDiary  domain.DiaryTier
	FaladorDiary  domain.DiaryTier
	HosidiusFavor int

	// Warnings lists the signals that fell back to their floor value
	Warnings []string
}

// ResolveSignals reads every signal from state. Unreadable skills fall back to
// level 1 and unreadable flags to 0; each fallback adds a warning.
// Levels are clamped to [1, 99].
func ResolveSignals(state GameState) Signals {
	var s Signals

	skill := func(id domain.Skill) int {
		level, err := state.SkillLevel(id)
		if err != nil {
			s.Warnings = append(s.Warnings, fmt.Sprintf(WarnUnresolvedSkill, id, domain.MinSkillLevel))
			return domain.MinSkillLevel
		}
		return utils.ClampInt(level, domain.MinSkillLevel, domain.MaxSkillLevel)
	}
	flag := func(id domain.Flag, upper int) int {
		value, err := state.Flag(id)
		if err != nil {
			s.Warnings = append(s.Warnings, fmt.Sprintf(WarnUnresolvedFlag, id, 0))
			return 0
		}
		return utils.ClampInt(value, 0, upper)
	}

	s.FarmingLevel = skill(domain.SkillFarming)
	s.MagicLevel = skill(domain.SkillMagic)
	s.KandarinDiary = domain.DiaryTier(flag(domain.FlagKandarinDiary, int(domain.DiaryElite)))
	s.KourendDiary = domain.DiaryTier(flag(domain.FlagKourendDiary, int(domain.DiaryElite)))
	s.FaladorDiary = domain.DiaryTier(flag(domain.FlagFaladorDiary, int(domain.DiaryElite)))
	s.HosidiusFavor = flag(domain.FlagHosidiusFavor, domain.HosidiusFavorMax)
	return s
}

// IsDiseaseFree reports whether crops in the patch can never catch disease
func IsDiseaseFree(patch domain.HerbPatch, s Signals) bool {
	switch patch {
	case domain.PatchTrollStronghold, domain.PatchWeiss:
		return true
	case domain.PatchHosidius:
		return s.HosidiusFavor >= HosidiusFavorThreshold
	default:
		return false
	}
}

// PatchYieldBonus is the patch-specific "chance to save" bonus. Only the
// highest completed diary tier counts.
func PatchYieldBonus(patch domain.HerbPatch, s Signals) float64 {
	switch patch {
	case domain.PatchCatherby:
		switch {
		case s.KandarinDiary >= domain.DiaryElite:
			return CatherbyEliteBonus
		case s.KandarinDiary >= domain.DiaryHard:
			return CatherbyHardBonus
		case s.KandarinDiary >= domain.DiaryMedium:
			return CatherbyMediumBonus
		}
	case domain.PatchHosidius, domain.PatchFarmingGuild:
		if s.KourendDiary >= domain.DiaryHard {
			return KourendHardBonus
		}
	}
	return 0
}

// PatchXPBonus is the patch-specific XP multiplier bonus
func PatchXPBonus(patch domain.HerbPatch, s Signals) float64 {
	if patch == domain.PatchFalador && s.FaladorDiary >= domain.DiaryMedium {
		return FaladorXPBonus
	}
	return 0
}

// ItemYieldBonus sums the "chance to save" bonuses from equipped items
func ItemYieldBonus(magicSecateurs, farmingCape bool) float64 {
	bonus := 0.0
	if magicSecateurs {
		bonus += MagicSecateursBonus
	}
	if farmingCape {
		bonus += FarmingCapeBonus
	}
	return bonus
}

// ResolvePatchBuffs computes the patch-specific buffs for every patch,
// sorted by patch name
func ResolvePatchBuffs(patches []domain.HerbPatch, s Signals) []domain.PatchBuffs {
	buffs := make([]domain.PatchBuffs, 0, len(patches))
	for _, p := range patches {
		buffs = append(buffs, domain.PatchBuffs{
			Patch:       p,
			DiseaseFree: IsDiseaseFree(p, s),
			YieldBonus:  PatchYieldBonus(p, s),
			XPBonus:     PatchXPBonus(p, s),
		})
	}
	sort.SliceStable(buffs, func(i, j int) bool {
		return buffs[i].Patch.Name() < buffs[j].Patch.Name()
	})
	return buffs
}
