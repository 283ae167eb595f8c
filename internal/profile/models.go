package profile

import (
	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Player holds the game state a profile supplies in place of a live client
type Player struct {
	Name   string               `yaml:"name"`
	Skills map[domain.Skill]int `yaml:"skills"`
	Flags  map[domain.Flag]int  `yaml:"flags"`
}

// Profile is one saved calculator setup
type Profile struct {
	// Name defaults to the file name without extension
	Name string `yaml:"name"`

	// Player is optional; without it every signal is unresolved
	Player *Player `yaml:"player,omitempty"`

	// Options default to every patch with ultracompost
	Options calculator.Options `yaml:"options"`

	Sort       domain.SortCriteria `yaml:"sort,omitempty"`
	Descending bool                `yaml:"descending,omitempty"`

	// Prices are coins per item ID, used offline or layered over live prices
	Prices domain.PriceTable `yaml:"prices,omitempty"`
}

// PlayerState converts the player section. A profile without one yields a
// nil state, which the calculator treats as fully unresolved.
func (p *Profile) PlayerState() *domain.PlayerState {
	if p.Player == nil {
		return nil
	}
	state := domain.NewPlayerState(p.Player.Name)
	for skill, level := range p.Player.Skills {
		state.Skills[skill] = level
	}
	for flag, value := range p.Player.Flags {
		state.Flags[flag] = value
	}
	return state
}
