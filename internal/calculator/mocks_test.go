package calculator

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// MockGameState is a mock implementation of GameState
type MockGameState struct {
	mock.Mock
}

func (m *MockGameState) SkillLevel(skill domain.Skill) (int, error) {
	args := m.Called(skill)
	return args.Int(0), args.Error(1)
}

func (m *MockGameState) Flag(flag domain.Flag) (int, error) {
	args := m.Called(flag)
	return args.Int(0), args.Error(1)
}

// newPlayer builds a fully resolved player snapshot
func newPlayer(farming, magic int, flags map[domain.Flag]int) *domain.PlayerState {
	p := domain.NewPlayerState("tester")
	p.Skills[domain.SkillFarming] = farming
	p.Skills[domain.SkillMagic] = magic
	for f, v := range flags {
		p.Flags[f] = v
	}
	return p
}

func testPrices() domain.PriceTable {
	return domain.PriceTable{
		domain.ItemUltracompost: 1000,
		domain.ItemSupercompost: 300,
		domain.ItemCompost:      50,
		domain.ItemRanarrSeed:   40000,
		domain.ItemGrimyRanarr:  7000,
		domain.ItemGuamSeed:     20,
		domain.ItemGrimyGuam:    5,
		domain.ItemEarthRune:    4,
		domain.ItemBloodRune:    200,
		domain.ItemNatureRune:   100,
		domain.ItemSoulRune:     150,
	}
}
