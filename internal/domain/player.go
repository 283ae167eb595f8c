package domain

import (
	"fmt"
	"strings"
	"time"
)

// Skill identifies a player skill read from game state
type Skill string

const (
	SkillFarming Skill = "farming"
	SkillMagic   Skill = "magic"
)

// Skill level bounds
const (
	MinSkillLevel = 1
	MaxSkillLevel = 99
)

// Flag identifies an achievement/progress signal read from game state.
// Diary flags hold a DiaryTier value; favor flags hold an integer out of 1000.
type Flag string

const (
	FlagKandarinDiary Flag = "kandarin_diary"
	FlagKourendDiary  Flag = "kourend_diary"
	FlagFaladorDiary  Flag = "falador_diary"
	FlagHosidiusFavor Flag = "hosidius_favor"
)

// KnownSkills and KnownFlags list every signal the calculator reads
var (
	KnownSkills = []Skill{SkillFarming, SkillMagic}
	KnownFlags  = []Flag{FlagKandarinDiary, FlagKourendDiary, FlagFaladorDiary, FlagHosidiusFavor}
)

// IsKnownSkill reports whether the skill is read by the calculator
func IsKnownSkill(s Skill) bool {
	for _, k := range KnownSkills {
		if k == s {
			return true
		}
	}
	return false
}

// IsKnownFlag reports whether the flag is read by the calculator
func IsKnownFlag(f Flag) bool {
	for _, k := range KnownFlags {
		if k == f {
			return true
		}
	}
	return false
}

// DiaryTier is the highest completed tier of an achievement diary
type DiaryTier int

const (
	DiaryNone DiaryTier = iota
	DiaryEasy
	DiaryMedium
	DiaryHard
	DiaryElite
)

var diaryNames = []string{"none", "easy", "medium", "hard", "elite"}

func (d DiaryTier) String() string {
	if d < 0 || int(d) >= len(diaryNames) {
		return fmt.Sprintf("DiaryTier(%d)", int(d))
	}
	return diaryNames[d]
}

// ParseDiaryTier resolves a tier from its name. Empty means none.
func ParseDiaryTier(s string) (DiaryTier, error) {
	needle := normalizeKey(s)
	if needle == "" {
		return DiaryNone, nil
	}
	for i, name := range diaryNames {
		if name == needle {
			return DiaryTier(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDiaryTier, s)
}

// NormalizePlayerName folds a display name to its storage key. Names are
// case-insensitive and the game treats spaces, underscores and dashes alike.
func NormalizePlayerName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// PlayerState is a stored snapshot of the signals the calculator reads for one player.
// It answers skill and flag lookups from its maps; a missing skill is unresolved.
type PlayerState struct {
	Name      string        `json:"name"`
	Skills    map[Skill]int `json:"skills"`
	Flags     map[Flag]int  `json:"flags"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewPlayerState creates an empty snapshot for a player
func NewPlayerState(name string) *PlayerState {
	return &PlayerState{
		Name:   name,
		Skills: make(map[Skill]int),
		Flags:  make(map[Flag]int),
	}
}

// SkillLevel returns the stored level or ErrUnresolvedSignal
func (p *PlayerState) SkillLevel(skill Skill) (int, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: skill %s (no player state)", ErrUnresolvedSignal, skill)
	}
	level, ok := p.Skills[skill]
	if !ok {
		return 0, fmt.Errorf("%w: skill %s", ErrUnresolvedSignal, skill)
	}
	return level, nil
}

// Flag returns the stored flag value. Unset flags on a known player are 0,
// because the game reports incomplete diaries and missing favor as 0.
func (p *PlayerState) Flag(flag Flag) (int, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: flag %s (no player state)", ErrUnresolvedSignal, flag)
	}
	return p.Flags[flag], nil
}

// Validate checks that every stored signal is known and in range
func (p *PlayerState) Validate() error {
	for skill, level := range p.Skills {
		if !IsKnownSkill(skill) {
			return fmt.Errorf("%w: %q", ErrUnknownSkill, skill)
		}
		if level < MinSkillLevel || level > MaxSkillLevel {
			return fmt.Errorf("%w: %s level %d outside [%d, %d]", ErrInvalidInput, skill, level, MinSkillLevel, MaxSkillLevel)
		}
	}
	for flag, value := range p.Flags {
		if !IsKnownFlag(flag) {
			return fmt.Errorf("%w: %q", ErrUnknownFlag, flag)
		}
		upper := int(DiaryElite)
		if flag == FlagHosidiusFavor {
			upper = HosidiusFavorMax
		}
		if value < 0 || value > upper {
			return fmt.Errorf("%w: %s value %d outside [0, %d]", ErrInvalidInput, flag, value, upper)
		}
	}
	return nil
}
