package domain

import "fmt"

// Compost is the fertilizer tier spread on a patch before planting
type Compost int

const (
	CompostNone Compost = iota
	CompostNormal
	CompostSuper
	CompostUltra
)

// CompostInfo holds the constants for one compost tier.
// BaseDiseaseChance is a numerator out of 128.
type CompostInfo struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	XP                float64 `json:"xp"`
	Item              ItemID  `json:"item"`
	BaseDiseaseChance float64 `json:"base_disease_chance"`
	HarvestLives      int     `json:"harvest_lives"`
}

// https://oldschool.runescape.wiki/w/Disease_(Farming)#Reducing_disease_risk
var compostTable = []CompostInfo{
	CompostNone:   {"none", "None", 0, NoItem, 27, 3},
	CompostNormal: {"compost", "Compost", 18, ItemCompost, 14, 4},
	CompostSuper:  {"supercompost", "Supercompost", 26, ItemSupercompost, 6, 5},
	CompostUltra:  {"ultracompost", "Ultracompost", 36, ItemUltracompost, 3, 6},
}

// AllComposts returns every compost tier, weakest first
func AllComposts() []Compost {
	out := make([]Compost, len(compostTable))
	for i := range compostTable {
		out[i] = Compost(i)
	}
	return out
}

// Info returns the catalog row for the tier
func (c Compost) Info() CompostInfo {
	return compostTable[c]
}

func (c Compost) String() string {
	if c < 0 || int(c) >= len(compostTable) {
		return fmt.Sprintf("Compost(%d)", int(c))
	}
	return compostTable[c].Name
}

// ParseCompost resolves a tier from its key or name
func ParseCompost(s string) (Compost, error) {
	needle := normalizeKey(s)
	if needle == "" {
		return CompostNone, nil
	}
	for i, info := range compostTable {
		if info.Key == needle || normalizeKey(info.Name) == needle {
			return Compost(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCompost, s)
}

// MarshalText encodes the tier as its key
func (c Compost) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(compostTable) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompost, int(c))
	}
	return []byte(compostTable[c].Key), nil
}

// UnmarshalText decodes a tier from its key or name
func (c *Compost) UnmarshalText(text []byte) error {
	parsed, err := ParseCompost(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// IsValid reports whether the value names a catalog entry
func (c Compost) IsValid() bool {
	return c >= 0 && int(c) < len(compostTable)
}
