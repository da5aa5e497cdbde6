// Package cart implements the client-only shopping cart: a mapping of item
// name to price and quantity with derived totals. Nothing here touches the
// server; the cart lives entirely on the client and is persisted through
// the local store after every mutation.
package cart

import (
	"math"
	"sort"

	"github.com/fumio65/Thrift-Clothing/pkg/localstore"
)

// TaxRate is applied to the subtotal and rounded to the nearest whole
// currency unit.
const TaxRate = 0.12

// Entry is one cart line. Qty is always > 0; a quantity update that would
// reach zero removes the entry instead.
type Entry struct {
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Cart holds the items keyed by product name.
type Cart struct {
	items map[string]Entry
	store *localstore.Store // optional; nil disables persistence
}

// New creates a cart backed by the given store. Previously saved cart state
// is loaded; anything corrupt is discarded for an empty cart. A nil store
// gives an in-memory cart.
func New(store *localstore.Store) *Cart {
	c := &Cart{
		items: make(map[string]Entry),
		store: store,
	}
	if store != nil {
		var saved map[string]Entry
		if store.Get(localstore.KeyCart, &saved) && saved != nil {
			for name, e := range saved {
				if e.Qty > 0 {
					c.items[name] = e
				}
			}
		}
	}
	return c
}

// Add puts one unit of the named item in the cart, incrementing the
// quantity if it is already there.
func (c *Cart) Add(name string, price float64) {
	if e, ok := c.items[name]; ok {
		e.Qty++
		c.items[name] = e
	} else {
		c.items[name] = Entry{Price: price, Qty: 1}
	}
	c.save()
}

// UpdateQty adds delta to the item's quantity. A result of zero or less
// removes the entry. Unknown names are ignored.
func (c *Cart) UpdateQty(name string, delta int) {
	e, ok := c.items[name]
	if !ok {
		return
	}
	e.Qty += delta
	if e.Qty <= 0 {
		delete(c.items, name)
	} else {
		c.items[name] = e
	}
	c.save()
}

// Remove deletes the entry outright.
func (c *Cart) Remove(name string) {
	delete(c.items, name)
	c.save()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = make(map[string]Entry)
	c.save()
}

// Get returns the entry for name, if present.
func (c *Cart) Get(name string) (Entry, bool) {
	e, ok := c.items[name]
	return e, ok
}

// Items returns the cart lines sorted by name for stable rendering.
func (c *Cart) Items() []Item {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]Item, 0, len(names))
	for _, name := range names {
		e := c.items[name]
		items = append(items, Item{Name: name, Price: e.Price, Qty: e.Qty})
	}
	return items
}

// Item is a named cart line, used for rendering.
type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// TotalItems returns the summed quantity across all entries.
func (c *Cart) TotalItems() int {
	total := 0
	for _, e := range c.items {
		total += e.Qty
	}
	return total
}

// Totals derives the bill: subtotal = sum of price*qty, tax = 12% of the
// subtotal rounded to the nearest whole unit, total = subtotal + tax.
func (c *Cart) Totals() (subtotal, tax, total float64) {
	for _, e := range c.items {
		subtotal += e.Price * float64(e.Qty)
	}
	tax = math.Round(subtotal * TaxRate)
	total = subtotal + tax
	return subtotal, tax, total
}

func (c *Cart) save() {
	if c.store == nil {
		return
	}
	// Persistence failures leave the in-memory cart intact.
	_ = c.store.Set(localstore.KeyCart, c.items)
}
