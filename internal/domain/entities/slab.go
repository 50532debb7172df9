package entities

import "github.com/shopspring/decimal"

// SlabSummary is a product record resolved from the slab catalog.
//
// AreaPerUnit is the surface area of a single slab in square feet; line item
// subtotals are priced per square foot, so quantity × AreaPerUnit × unit area
// price yields the merchandise value of a line.

type SlabSummary struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	StoneType    string          `json:"stone_type"`
	Finish       string          `json:"finish"`
	ThicknessCM  int             `json:"thickness_cm"`
	Origin       string          `json:"origin"`
	AreaPerUnit  decimal.Decimal `json:"area_per_unit_sqft"`
	ListPrice    decimal.Decimal `json:"list_price_per_sqft"`
	InStockUnits int             `json:"in_stock_units"`
}

// SlabFilters narrows a catalog search. Zero values mean "no constraint".
type SlabFilters struct {
	Finish      string
	ThicknessCM int
}
