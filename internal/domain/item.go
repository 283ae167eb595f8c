package domain

import "strconv"

// ItemID identifies a tradeable item on the Grand Exchange
type ItemID int

// NoItem is the sentinel for "no associated item". Its price is always 0.
const NoItem ItemID = -1

// String returns the decimal form used by the prices API
func (id ItemID) String() string {
	return strconv.Itoa(int(id))
}

// Herb seed item IDs
const (
	ItemGuamSeed        ItemID = 5291
	ItemMarrentillSeed  ItemID = 5292
	ItemTarrominSeed    ItemID = 5293
	ItemHarralanderSeed ItemID = 5294
	ItemRanarrSeed      ItemID = 5295
	ItemToadflaxSeed    ItemID = 5296
	ItemIritSeed        ItemID = 5297
	ItemAvantoeSeed     ItemID = 5298
	ItemKwuarmSeed      ItemID = 5299
	ItemSnapdragonSeed  ItemID = 5300
	ItemCadantineSeed   ItemID = 5301
	ItemLantadymeSeed   ItemID = 5302
	ItemDwarfWeedSeed   ItemID = 5303
	ItemTorstolSeed     ItemID = 5304
)

// Grimy herb item IDs
const (
	ItemGrimyGuam        ItemID = 199
	ItemGrimyMarrentill  ItemID = 201
	ItemGrimyTarromin    ItemID = 203
	ItemGrimyHarralander ItemID = 205
	ItemGrimyRanarr      ItemID = 207
	ItemGrimyIrit        ItemID = 209
	ItemGrimyAvantoe     ItemID = 211
	ItemGrimyKwuarm      ItemID = 213
	ItemGrimyCadantine   ItemID = 215
	ItemGrimyDwarfWeed   ItemID = 217
	ItemGrimyTorstol     ItemID = 219
	ItemGrimyLantadyme   ItemID = 2485
	ItemGrimyToadflax    ItemID = 3049
	ItemGrimySnapdragon  ItemID = 3051
)

// Compost item IDs
const (
	ItemCompost      ItemID = 6032
	ItemSupercompost ItemID = 6034
	ItemUltracompost ItemID = 21483
)

// Rune item IDs (Resurrect Crops reagents)
const (
	ItemEarthRune  ItemID = 557
	ItemNatureRune ItemID = 561
	ItemBloodRune  ItemID = 565
	ItemSoulRune   ItemID = 566
)

// ItemStack is a quantity of one item
type ItemStack struct {
	Item     ItemID `json:"item_id" yaml:"item_id"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}
