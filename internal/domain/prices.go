package domain

// PriceTable is a resolved snapshot of item prices in coins
type PriceTable map[ItemID]int

// Price returns the stored price. NoItem, unknown items and negative
// entries all price at 0.
func (t PriceTable) Price(item ItemID) int {
	if item == NoItem {
		return 0
	}
	price := t[item]
	if price < 0 {
		return 0
	}
	return price
}

// Merge returns a new table with other's entries overriding t's
func (t PriceTable) Merge(other PriceTable) PriceTable {
	out := make(PriceTable, len(t)+len(other))
	for id, p := range t {
		out[id] = p
	}
	for id, p := range other {
		out[id] = p
	}
	return out
}

// PricedItems lists every item the calculator may need a price for
func PricedItems() []ItemID {
	items := make([]ItemID, 0, 2*len(herbTable)+len(compostTable)+len(ResurrectCropsRunes))
	for _, h := range herbTable {
		items = append(items, h.SeedItem, h.GrimyItem)
	}
	for _, c := range compostTable {
		if c.Item != NoItem {
			items = append(items, c.Item)
		}
	}
	for _, r := range ResurrectCropsRunes {
		items = append(items, r.Item)
	}
	return items
}

// ResurrectCropsRunes is the rune cost of one Resurrect Crops cast
var ResurrectCropsRunes = []ItemStack{
	{Item: ItemEarthRune, Quantity: 25},
	{Item: ItemBloodRune, Quantity: 8},
	{Item: ItemNatureRune, Quantity: 12},
	{Item: ItemSoulRune, Quantity: 8},
}
