package services

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownItem is returned when an estimator operation names an item that
// is not in the catalog.
var ErrUnknownItem = errors.New("unknown catalog item")

// DisplayState is what the estimator summary panel shows.
type DisplayState int

const (
	StateEmpty DisplayState = iota
	StatePopulated
)

func (s DisplayState) String() string {
	if s == StatePopulated {
		return "populated"
	}
	return "empty"
}

// LineItem is one row of an estimate breakdown.
type LineItem struct {
	Item      PricedItem
	Quantity  int
	LineTotal decimal.Decimal
}

// Estimator holds the requested quantities for one estimator session.
// It is not safe for concurrent use.
type Estimator struct {
	catalog    *Catalog
	quantities map[string]int
}

// NewEstimator returns an empty estimator over catalog.
func NewEstimator(catalog *Catalog) *Estimator {
	return &Estimator{
		catalog:    catalog,
		quantities: make(map[string]int),
	}
}

// Catalog returns the catalog the estimator prices against.
func (e *Estimator) Catalog() *Catalog {
	return e.catalog
}

func (e *Estimator) check(id string) error {
	if _, ok := e.catalog.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return nil
}

// Increment adds one to the item's quantity.
func (e *Estimator) Increment(id string) error {
	if err := e.check(id); err != nil {
		return err
	}
	e.quantities[id]++
	return nil
}

// Decrement removes one from the item's quantity, stopping at zero.
func (e *Estimator) Decrement(id string) error {
	if err := e.check(id); err != nil {
		return err
	}
	e.quantities[id] = max(0, e.quantities[id]-1)
	return nil
}

// SetQuantity sets the item's quantity from raw user input. Input that does
// not parse as an integer, or is negative, sets the quantity to zero.
func (e *Estimator) SetQuantity(id, raw string) error {
	return e.SetQuantityInt(id, ParseQuantity(raw))
}

// SetQuantityInt sets the item's quantity, clamping negatives to zero.
func (e *Estimator) SetQuantityInt(id string, n int) error {
	if err := e.check(id); err != nil {
		return err
	}
	e.quantities[id] = max(0, n)
	return nil
}

// Quantity returns the current quantity for id (zero when untouched or unknown).
func (e *Estimator) Quantity(id string) int {
	return e.quantities[id]
}

// Quantities returns a copy of the non-zero quantities.
func (e *Estimator) Quantities() map[string]int {
	out := make(map[string]int, len(e.quantities))
	for id, q := range e.quantities {
		if q > 0 {
			out[id] = q
		}
	}
	return out
}

// ClearAll resets every quantity to zero.
func (e *Estimator) ClearAll() {
	clear(e.quantities)
}

// Total returns the sum of quantity x unit price over the catalog.
func (e *Estimator) Total() decimal.Decimal {
	total := decimal.Zero
	for line := range e.Breakdown() {
		total = total.Add(line.LineTotal)
	}
	return total
}

// Breakdown yields a line for every item with a positive quantity, in catalog
// order. The sequence reads the current state each time it is ranged over.
func (e *Estimator) Breakdown() iter.Seq[LineItem] {
	return func(yield func(LineItem) bool) {
		for _, it := range e.catalog.items {
			q := e.quantities[it.ID]
			if q <= 0 {
				continue
			}
			line := LineItem{
				Item:      it,
				Quantity:  q,
				LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(int64(q))),
			}
			if !yield(line) {
				return
			}
		}
	}
}

// HasAnyItems reports whether any quantity is above zero.
func (e *Estimator) HasAnyItems() bool {
	for _, q := range e.quantities {
		if q > 0 {
			return true
		}
	}
	return false
}

// State reports which summary view applies.
func (e *Estimator) State() DisplayState {
	if e.HasAnyItems() {
		return StatePopulated
	}
	return StateEmpty
}

// ItemCount returns the sum of all quantities.
func (e *Estimator) ItemCount() int {
	n := 0
	for _, q := range e.quantities {
		n += q
	}
	return n
}

// GroupedByCategory returns the catalog's category grouping.
func (e *Estimator) GroupedByCategory() []CategoryGroup {
	return e.catalog.GroupedByCategory()
}

// ParseQuantity converts a quantity field value to a non-negative integer.
// Only the leading integer is read, so "3.5" is 3 and "12abc" is 12. Input
// with no leading digits, or a negative number, yields 0. Values too large
// for an int saturate at math.MaxInt.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		n = math.MaxInt
	} else if err != nil {
		return 0
	}
	if negative {
		return 0
	}
	return n
}
