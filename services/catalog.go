// Package services provides the quote estimator, pricing content and exports.
package services

import "github.com/shopspring/decimal"

// Category groups priced items for display.
type Category string

const (
	CategoryAdult    Category = "adult"
	CategoryChildren Category = "children"
	CategoryBedding  Category = "bedding"
	CategoryWork     Category = "work"
)

// Title returns the heading shown above a category group.
func (c Category) Title() string {
	switch c {
	case CategoryAdult:
		return "Adult Clothing"
	case CategoryWork:
		return "Work Attire"
	case CategoryChildren:
		return "Children's Items"
	case CategoryBedding:
		return "Bedding"
	default:
		return ""
	}
}

// Unit is what one quantity of a priced item stands for.
type Unit string

const (
	UnitBundle Unit = "bundle"
	UnitItem   Unit = "item"
	UnitSet    Unit = "set"
)

// PricedItem is one orderable catalog entry.
type PricedItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Unit      Unit
	Category  Category
}

// Catalog is an immutable, ordered list of priced items. The zero value is empty.
type Catalog struct {
	items []PricedItem
	index map[string]int
}

// NewCatalog builds a catalog from items in display order. Duplicate IDs keep
// the first definition.
func NewCatalog(items ...PricedItem) *Catalog {
	c := &Catalog{
		items: make([]PricedItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.index[it.ID]; dup {
			continue
		}
		c.index[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

// Items returns a copy of the catalog entries in catalog order.
func (c *Catalog) Items() []PricedItem {
	out := make([]PricedItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds an item by ID.
func (c *Catalog) Lookup(id string) (PricedItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return PricedItem{}, false
	}
	return c.items[i], true
}

// CategoryGroup is one display group of the catalog.
type CategoryGroup struct {
	Category Category
	Items    []PricedItem
}

// GroupedByCategory partitions the catalog by category. Groups appear in the
// order their first item appears; items keep catalog order within a group.
func (c *Catalog) GroupedByCategory() []CategoryGroup {
	var groups []CategoryGroup
	pos := make(map[Category]int)
	for _, it := range c.items {
		i, ok := pos[it.Category]
		if !ok {
			i = len(groups)
			pos[it.Category] = i
			groups = append(groups, CategoryGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var defaultCatalog = NewCatalog(
	// Adult clothes (bulk pricing)
	PricedItem{ID: "adult-10", Name: "Adult Items (10 pieces)", UnitPrice: price("15"), Unit: UnitBundle, Category: CategoryAdult},
	PricedItem{ID: "adult-20", Name: "Adult Items (20 pieces)", UnitPrice: price("20"), Unit: UnitBundle, Category: CategoryAdult},
	PricedItem{ID: "adult-30", Name: "Adult Items (30 pieces)", UnitPrice: price("30"), Unit: UnitBundle, Category: CategoryAdult},
	PricedItem{ID: "adult-extra", Name: "Adult Items (30+ each extra)", UnitPrice: price("0.90"), Unit: UnitItem, Category: CategoryAdult},

	// Work items
	PricedItem{ID: "work-shirt", Name: "Work Shirts", UnitPrice: price("1.75"), Unit: UnitItem, Category: CategoryWork},
	PricedItem{ID: "work-dress", Name: "Work Dresses", UnitPrice: price("1.75"), Unit: UnitItem, Category: CategoryWork},

	// Children's items
	PricedItem{ID: "child-item", Name: "Children's Items", UnitPrice: price("0.50"), Unit: UnitItem, Category: CategoryChildren},
	PricedItem{ID: "school-uniform", Name: "School Uniform Items", UnitPrice: price("0.75"), Unit: UnitItem, Category: CategoryChildren},

	// Bedding
	PricedItem{ID: "single-bed", Name: "Single Bed Set", UnitPrice: price("3"), Unit: UnitSet, Category: CategoryBedding},
	PricedItem{ID: "double-bed", Name: "Double Bed Set", UnitPrice: price("5"), Unit: UnitSet, Category: CategoryBedding},
	PricedItem{ID: "king-bed", Name: "King Bed Set", UnitPrice: price("8"), Unit: UnitSet, Category: CategoryBedding},
	PricedItem{ID: "super-king-bed", Name: "Super King Bed Set", UnitPrice: price("9"), Unit: UnitSet, Category: CategoryBedding},
)

// DefaultCatalog returns the site's price list. It is shared and read-only.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
