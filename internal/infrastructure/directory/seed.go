package directory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"stonetrade/internal/domain/entities"
	"stonetrade/internal/usecase/interfaces"
)

// SeededBuyerDirectory is the in-process buyer directory backed by fixture
// data. The marketplace resolves buyers from a separate service in
// production; the seam is interfaces.IBuyerDirectory.
type SeededBuyerDirectory struct {
	buyers []entities.BuyerSummary
}

var _ interfaces.IBuyerDirectory = (*SeededBuyerDirectory)(nil)

func NewSeededBuyerDirectory() *SeededBuyerDirectory {
	return &SeededBuyerDirectory{buyers: seedBuyers()}
}

func (d *SeededBuyerDirectory) Search(ctx context.Context, term string) ([]entities.BuyerSummary, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]entities.BuyerSummary, len(d.buyers))
		copy(out, d.buyers)
		return out, nil
	}
	var out []entities.BuyerSummary
	for _, b := range d.buyers {
		if strings.Contains(strings.ToLower(b.Name), term) ||
			strings.Contains(strings.ToLower(b.Location), term) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Get resolves a buyer by id. A missing id yields a zero-value summary and
// no error; callers map that to their own not-found.
func (d *SeededBuyerDirectory) Get(ctx context.Context, id string) (entities.BuyerSummary, error) {
	for _, b := range d.buyers {
		if b.ID == id {
			return b, nil
		}
	}
	return entities.BuyerSummary{}, nil
}

// SeededSlabCatalog is the in-process slab catalog backed by fixture data.
type SeededSlabCatalog struct {
	slabs []entities.SlabSummary
}

var _ interfaces.ISlabCatalog = (*SeededSlabCatalog)(nil)

func NewSeededSlabCatalog() *SeededSlabCatalog {
	return &SeededSlabCatalog{slabs: seedSlabs()}
}

func (c *SeededSlabCatalog) Search(ctx context.Context, term string, filters entities.SlabFilters) ([]entities.SlabSummary, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []entities.SlabSummary
	for _, s := range c.slabs {
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.StoneType), term) {
			continue
		}
		if filters.Finish != "" && !strings.EqualFold(s.Finish, filters.Finish) {
			continue
		}
		if filters.ThicknessCM != 0 && s.ThicknessCM != filters.ThicknessCM {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *SeededSlabCatalog) Get(ctx context.Context, id string) (entities.SlabSummary, error) {
	for _, s := range c.slabs {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.SlabSummary{}, nil
}

func seedBuyers() []entities.BuyerSummary {
	return []entities.BuyerSummary{
		{
			ID:                "byr-1001",
			Name:              "Granite Imports LLC",
			Location:          "Houston, TX",
			PreferredCurrency: entities.CurrencyUSD,
			PreferredPort:     "Port of Houston",
			CreditEligible:    true,
		},
		{
			ID:                "byr-1002",
			Name:              "Stonecraft Surfaces",
			Location:          "Newark, NJ",
			PreferredCurrency: entities.CurrencyUSD,
			PreferredPort:     "Port Newark",
			CreditEligible:    false,
		},
		{
			ID:                "byr-1003",
			Name:              "Shree Ganesh Marbles",
			Location:          "Kishangarh, Rajasthan",
			PreferredCurrency: entities.CurrencyINR,
			PreferredPort:     "Mundra Port",
			CreditEligible:    true,
		},
		{
			ID:                "byr-1004",
			Name:              "Deccan Stone Traders",
			Location:          "Hyderabad, Telangana",
			PreferredCurrency: entities.CurrencyINR,
			PreferredPort:     "Krishnapatnam Port",
			CreditEligible:    false,
		},
	}
}

func seedSlabs() []entities.SlabSummary {
	return []entities.SlabSummary{
		{
			ID:           "slb-2001",
			Name:         "Black Galaxy",
			StoneType:    "granite",
			Finish:       "polished",
			ThicknessCM:  3,
			Origin:       "Ongole, India",
			AreaPerUnit:  decimal.RequireFromString("32.5"),
			ListPrice:    decimal.RequireFromString("21.50"),
			InStockUnits: 48,
		},
		{
			ID:           "slb-2002",
			Name:         "Kashmir White",
			StoneType:    "granite",
			Finish:       "polished",
			ThicknessCM:  2,
			Origin:       "Madurai, India",
			AreaPerUnit:  decimal.RequireFromString("28.0"),
			ListPrice:    decimal.RequireFromString("18.75"),
			InStockUnits: 36,
		},
		{
			ID:           "slb-2003",
			Name:         "Tan Brown",
			StoneType:    "granite",
			Finish:       "leathered",
			ThicknessCM:  3,
			Origin:       "Karimnagar, India",
			AreaPerUnit:  decimal.RequireFromString("30.25"),
			ListPrice:    decimal.RequireFromString("16.40"),
			InStockUnits: 64,
		},
		{
			ID:           "slb-2004",
			Name:         "Absolute Black",
			StoneType:    "granite",
			Finish:       "honed",
			ThicknessCM:  2,
			Origin:       "Khammam, India",
			AreaPerUnit:  decimal.RequireFromString("26.75"),
			ListPrice:    decimal.RequireFromString("24.90"),
			InStockUnits: 22,
		},
		{
			ID:           "slb-2005",
			Name:         "Steel Grey",
			StoneType:    "granite",
			Finish:       "polished",
			ThicknessCM:  3,
			Origin:       "Ongole, India",
			AreaPerUnit:  decimal.RequireFromString("31.0"),
			ListPrice:    decimal.RequireFromString("14.25"),
			InStockUnits: 80,
		},
	}
}
