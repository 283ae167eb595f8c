package domain

import (
	"fmt"
	"sort"
)

// SortCriteria orders herb results for display
type SortCriteria string

const (
	SortAlphabetical SortCriteria = "alphabetical"
	SortLevel        SortCriteria = "level"
	SortProfit       SortCriteria = "profit"
	SortYield        SortCriteria = "yield"
	SortXP           SortCriteria = "xp"
)

// AllSortCriteria lists the criteria in menu order
var AllSortCriteria = []SortCriteria{SortAlphabetical, SortLevel, SortProfit, SortYield, SortXP}

// ParseSortCriteria resolves a criteria name. Empty means level.
func ParseSortCriteria(s string) (SortCriteria, error) {
	needle := SortCriteria(normalizeKey(s))
	if needle == "" {
		return SortLevel, nil
	}
	for _, c := range AllSortCriteria {
		if c == needle {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortCriteria, s)
}

func (c SortCriteria) less(a, b HerbResult) bool {
	switch c {
	case SortAlphabetical:
		return a.Herb.Name() < b.Herb.Name()
	case SortProfit:
		return a.Profit() < b.Profit()
	case SortYield:
		return a.ExpectedYield() < b.ExpectedYield()
	case SortXP:
		return a.ExpectedXP() < b.ExpectedXP()
	default:
		return a.Herb.Info().Level < b.Herb.Info().Level
	}
}

// SortHerbResults returns a sorted copy of results. The input slice and the
// computed values are left untouched; ties keep catalog order.
func SortHerbResults(results []HerbResult, criteria SortCriteria, descending bool) []HerbResult {
	sorted := make([]HerbResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return criteria.less(sorted[j], sorted[i])
		}
		return criteria.less(sorted[i], sorted[j])
	})
	return sorted
}
