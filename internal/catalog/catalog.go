// Package catalog resolves billable service names to unit prices and turns
// service orders into ledger charges.
package catalog

import (
	"sort"
	"strings"
)

// Item is one priced entry of the hospital's service list.
type Item struct {
	Name      string
	Category  string
	UnitPrice int64 // minor currency units
}

// Catalog is an immutable, case-insensitive index over a price list.
type Catalog struct {
	items map[string]Item
}

// New builds a catalog from items. Later duplicates replace earlier ones.
func New(items []Item) *Catalog {
	c := &Catalog{items: make(map[string]Item, len(items))}

	for _, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		it.Category = strings.TrimSpace(it.Category)

		if it.Name == "" {
			continue
		}

		c.items[key(it.Name)] = it
	}

	return c
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the catalog entry for name.
func (c *Catalog) Lookup(name string) (Item, error) {
	it, ok := c.items[key(name)]
	if !ok {
		return Item{}, ErrNotFound
	}

	return it, nil
}

func (c *Catalog) PriceOf(name string) (int64, error) {
	it, err := c.Lookup(name)
	if err != nil {
		return 0, err
	}

	return it.UnitPrice, nil
}

// List returns all items sorted by category, then name.
func (c *Catalog) List() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}

		return out[i].Name < out[j].Name
	})

	return out
}
