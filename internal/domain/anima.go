package domain

import "fmt"

// AnimaPlant is the global plant buff growing in the Farming Guild anima patch
type AnimaPlant int

const (
	AnimaNone AnimaPlant = iota
	AnimaAttas
	AnimaIasor
	AnimaKronos
)

var animaTable = []struct {
	key  string
	name string
}{
	AnimaNone:   {"none", "None"},
	AnimaAttas:  {"attas", "Attas"},
	AnimaIasor:  {"iasor", "Iasor"},
	AnimaKronos: {"kronos", "Kronos"},
}

// AllAnimaPlants returns every anima plant option, none first
func AllAnimaPlants() []AnimaPlant {
	out := make([]AnimaPlant, len(animaTable))
	for i := range animaTable {
		out[i] = AnimaPlant(i)
	}
	return out
}

// DiseaseChanceModifier scales the per-cycle disease numerator.
// Iasor reduces disease chance by 80%.
func (a AnimaPlant) DiseaseChanceModifier() float64 {
	if a == AnimaIasor {
		return 0.2
	}
	return 1.0
}

// ChanceToSaveBonus is the fractional "chance to save" bonus. Attas grants 5%.
func (a AnimaPlant) ChanceToSaveBonus() float64 {
	if a == AnimaAttas {
		return 0.05
	}
	return 0.0
}

func (a AnimaPlant) String() string {
	if a < 0 || int(a) >= len(animaTable) {
		return fmt.Sprintf("AnimaPlant(%d)", int(a))
	}
	return animaTable[a].name
}

// ParseAnimaPlant resolves a plant from its key or name. Empty means none.
func ParseAnimaPlant(s string) (AnimaPlant, error) {
	needle := normalizeKey(s)
	if needle == "" {
		return AnimaNone, nil
	}
	for i, row := range animaTable {
		if row.key == needle {
			return AnimaPlant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnimaPlant, s)
}

// MarshalText encodes the plant as its key
func (a AnimaPlant) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(animaTable) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAnimaPlant, int(a))
	}
	return []byte(animaTable[a].key), nil
}

// UnmarshalText decodes a plant from its key
func (a *AnimaPlant) UnmarshalText(text []byte) error {
	parsed, err := ParseAnimaPlant(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// IsValid reports whether the value names a catalog entry
func (a AnimaPlant) IsValid() bool {
	return a >= 0 && int(a) < len(animaTable)
}
