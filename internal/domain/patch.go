package domain

import "fmt"

// HerbPatch is a location where herbs can be grown
type HerbPatch int

const (
	PatchArdougne HerbPatch = iota
	PatchCatherby
	PatchFalador
	PatchFarmingGuild
	PatchHarmony
	PatchHosidius
	PatchPortPhasmatys
	PatchTrollStronghold
	PatchWeiss
)

var patchTable = []struct {
	key  string
	name string
}{
	PatchArdougne:        {"ardougne", "Ardougne"},
	PatchCatherby:        {"catherby", "Catherby"},
	PatchFalador:         {"falador", "Falador"},
	PatchFarmingGuild:    {"farming_guild", "Farming Guild"},
	PatchHarmony:         {"harmony", "Harmony"},
	PatchHosidius:        {"hosidius", "Hosidius"},
	PatchPortPhasmatys:   {"port_phasmatys", "Port Phasmatys"},
	PatchTrollStronghold: {"troll_stronghold", "Troll Stronghold"},
	PatchWeiss:           {"weiss", "Weiss"},
}

// AllPatches returns every herb patch
func AllPatches() []HerbPatch {
	patches := make([]HerbPatch, len(patchTable))
	for i := range patchTable {
		patches[i] = HerbPatch(i)
	}
	return patches
}

// Name returns the display name
func (p HerbPatch) Name() string {
	return patchTable[p].name
}

// Key returns the stable identifier used in configs and the API
func (p HerbPatch) Key() string {
	return patchTable[p].key
}

func (p HerbPatch) String() string {
	if p < 0 || int(p) >= len(patchTable) {
		return fmt.Sprintf("HerbPatch(%d)", int(p))
	}
	return p.Name()
}

// ParsePatch resolves a patch from its key or display name (case-insensitive)
func ParsePatch(s string) (HerbPatch, error) {
	needle := normalizeKey(s)
	for i, row := range patchTable {
		if row.key == needle || normalizeKey(row.name) == needle {
			return HerbPatch(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPatch, s)
}

// MarshalText encodes the patch as its key
func (p HerbPatch) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(patchTable) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPatch, int(p))
	}
	return []byte(p.Key()), nil
}

// UnmarshalText decodes a patch from its key or name
func (p *HerbPatch) UnmarshalText(text []byte) error {
	parsed, err := ParsePatch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// IsValid reports whether the value names a catalog entry
func (p HerbPatch) IsValid() bool {
	return p >= 0 && int(p) < len(patchTable)
}
