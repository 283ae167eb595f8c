package domain

// CatalogValue is implemented by the catalog enums (Herb, HerbPatch, Compost,
// AnimaPlant). IsValid is false for values outside the catalog.
type CatalogValue interface {
	IsValid() bool
}

var (
	_ CatalogValue = Herb(0)
	_ CatalogValue = HerbPatch(0)
	_ CatalogValue = Compost(0)
	_ CatalogValue = AnimaPlant(0)
)
