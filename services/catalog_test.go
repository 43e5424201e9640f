package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultCatalog_Entries(t *testing.T) {
	cat := DefaultCatalog()
	if cat.Len() != 12 {
		t.Fatalf("DefaultCatalog has %d items, want 12", cat.Len())
	}

	tests := []struct {
		id       string
		price    string
		unit     Unit
		category Category
	}{
		{"adult-10", "15", UnitBundle, CategoryAdult},
		{"adult-extra", "0.9", UnitItem, CategoryAdult},
		{"work-shirt", "1.75", UnitItem, CategoryWork},
		{"child-item", "0.5", UnitItem, CategoryChildren},
		{"school-uniform", "0.75", UnitItem, CategoryChildren},
		{"single-bed", "3", UnitSet, CategoryBedding},
		{"super-king-bed", "9", UnitSet, CategoryBedding},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			it, ok := cat.Lookup(tt.id)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.id)
			}
			if !it.UnitPrice.Equal(decimal.RequireFromString(tt.price)) {
				t.Errorf("price = %s, want %s", it.UnitPrice, tt.price)
			}
			if it.Unit != tt.unit {
				t.Errorf("unit = %q, want %q", it.Unit, tt.unit)
			}
			if it.Category != tt.category {
				t.Errorf("category = %q, want %q", it.Category, tt.category)
			}
		})
	}
}

func TestCatalog_GroupedByCategory(t *testing.T) {
	groups := DefaultCatalog().GroupedByCategory()

	wantOrder := []Category{CategoryAdult, CategoryWork, CategoryChildren, CategoryBedding}
	wantSizes := []int{4, 2, 2, 4}
	if len(groups) != len(wantOrder) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantOrder))
	}
	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("group %d = %q, want %q", i, g.Category, wantOrder[i])
		}
		if len(g.Items) != wantSizes[i] {
			t.Errorf("group %q has %d items, want %d", g.Category, len(g.Items), wantSizes[i])
		}
	}

	bedding := groups[3].Items
	wantBeds := []string{"single-bed", "double-bed", "king-bed", "super-king-bed"}
	for i, id := range wantBeds {
		if bedding[i].ID != id {
			t.Errorf("bedding[%d] = %q, want %q", i, bedding[i].ID, id)
		}
	}
}

func TestCatalog_ItemsIsCopy(t *testing.T) {
	cat := DefaultCatalog()
	items := cat.Items()
	items[0].Name = "changed"

	it, _ := cat.Lookup(items[0].ID)
	if it.Name == "changed" {
		t.Error("mutating Items() result changed the catalog")
	}
}

func TestNewCatalog_DuplicateIDs(t *testing.T) {
	cat := NewCatalog(
		PricedItem{ID: "a", Name: "first", UnitPrice: decimal.NewFromInt(1), Category: CategoryAdult},
		PricedItem{ID: "a", Name: "second", UnitPrice: decimal.NewFromInt(2), Category: CategoryAdult},
	)
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}
	it, _ := cat.Lookup("a")
	if it.Name != "first" {
		t.Errorf("Lookup(a).Name = %q, want first", it.Name)
	}
}

func TestCategory_Title(t *testing.T) {
	tests := map[Category]string{
		CategoryAdult:    "Adult Clothing",
		CategoryWork:     "Work Attire",
		CategoryChildren: "Children's Items",
		CategoryBedding:  "Bedding",
		Category("misc"): "",
	}
	for c, want := range tests {
		if got := c.Title(); got != want {
			t.Errorf("%q.Title() = %q, want %q", c, got, want)
		}
	}
}
