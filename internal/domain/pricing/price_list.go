package pricing

import "sort"

// PriceList maps garment names to unit prices. It is supplied by
// configuration and consulted on every subtotal computation, so a changed
// table is reflected immediately in new totals while already-saved orders
// keep the prices captured at submission time.
type PriceList struct {
	prices map[string]float64
}

// New creates a PriceList from the given mapping. The map is copied.
func New(prices map[string]float64) *PriceList {
	copied := make(map[string]float64, len(prices))
	for name, price := range prices {
		copied[name] = price
	}
	return &PriceList{prices: copied}
}

// PriceOf returns the unit price for an item, or 0 when the item is not
// on the price card.
func (p *PriceList) PriceOf(name string) float64 {
	return p.prices[name]
}

// Items returns the priced item names in stable order.
func (p *PriceList) Items() []string {
	names := make([]string, 0, len(p.prices))
	for name := range p.prices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns a copy of the full price mapping.
func (p *PriceList) Table() map[string]float64 {
	out := make(map[string]float64, len(p.prices))
	for name, price := range p.prices {
		out[name] = price
	}
	return out
}
