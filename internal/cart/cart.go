package cart

import (
	"log"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/ankurdhir/laddu/internal/catalog"
)

// Cart owns an ordered list of items backed by a Store. Every mutation
// persists the full list before listeners are notified, so no partial-write
// state is ever observable.
type Cart struct {
	mu        sync.Mutex
	store     Store
	items     []Item
	listeners []func(Snapshot)
}

// NewCart loads the persisted items from store. A missing or malformed
// record means an empty cart, never a startup failure.
func NewCart(store Store) *Cart {
	c := &Cart{store: store}
	items, err := store.Load()
	if err != nil {
		log.Printf("cart: ignoring unreadable stored cart: %v", err)
		return c
	}
	c.items = items
	return c
}

// Subscribe registers a listener for cart-updated notifications.
func (c *Cart) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// persistLocked saves and prepares the notification fan-out. Storage errors
// are logged, not surfaced: the in-memory cart stays authoritative for the
// session.
func (c *Cart) persistLocked() func() {
	if err := c.store.Save(append([]Item{}, c.items...)); err != nil {
		log.Printf("cart: save failed: %v", err)
	}
	snap := c.snapshotLocked()
	listeners := make([]func(Snapshot), len(c.listeners))
	copy(listeners, c.listeners)
	return func() {
		for _, fn := range listeners {
			fn(snap)
		}
	}
}

// AddPreset adds a preset line, merging into an existing line for the same
// preset id by summing quantities. Returns the item id.
func (c *Cart) AddPreset(p catalog.Preset, qtyKg float64) string {
	q := ClampQtyKg(qtyKg)

	c.mu.Lock()
	for i := range c.items {
		it := &c.items[i]
		if it.Type == TypePreset && it.Meta.PresetID == p.ID {
			it.QtyKg = ClampQtyKg(it.QtyKg + q)
			it.UnitPrice = p.PricePerKg
			it.TotalPrice = roundPrice(float64(p.PricePerKg) * it.QtyKg)
			id := it.ID
			notify := c.persistLocked()
			c.mu.Unlock()
			notify()
			return id
		}
	}

	item := Item{
		ID:         uuid.New().String(),
		Type:       TypePreset,
		Name:       p.Name,
		QtyKg:      q,
		UnitPrice:  p.PricePerKg,
		TotalPrice: roundPrice(float64(p.PricePerKg) * q),
		Meta:       Meta{PresetID: p.ID, Tagline: p.Tagline},
	}
	c.items = append(c.items, item)
	notify := c.persistLocked()
	c.mu.Unlock()
	notify()
	return item.ID
}

// AddCustom always appends a new line; custom mixes are never merged even
// when their ingredients match.
func (c *Cart) AddCustom(snap CustomSnapshot, qtyKg float64) string {
	q := ClampQtyKg(qtyKg)
	name := snap.Name
	if name == "" {
		name = "Custom Mix"
	}

	item := Item{
		ID:         uuid.New().String(),
		Type:       TypeCustom,
		Name:       name,
		QtyKg:      q,
		UnitPrice:  snap.UnitPrice,
		TotalPrice: roundPrice(float64(snap.UnitPrice) * q),
		Meta:       snap.Meta,
		Highlights: snap.Highlights,
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	notify := c.persistLocked()
	c.mu.Unlock()
	notify()
	return item.ID
}

// UpdateQty clamps and recomputes one line's total. Absent ids are a no-op.
func (c *Cart) UpdateQty(id string, qtyKg float64) {
	q := ClampQtyKg(qtyKg)

	c.mu.Lock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].QtyKg = q
			c.items[i].TotalPrice = roundPrice(float64(c.items[i].UnitPrice) * q)
			notify := c.persistLocked()
			c.mu.Unlock()
			notify()
			return
		}
	}
	c.mu.Unlock()
}

func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	notify := c.persistLocked()
	c.mu.Unlock()
	notify()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	notify := c.persistLocked()
	c.mu.Unlock()
	notify()
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item{}, c.items...)
}

// Totals sums the cart. TotalKg is rounded to the nearest 0.5; line totals
// are already rounded and are summed without re-rounding.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalsLocked()
}

func (c *Cart) totalsLocked() Totals {
	var t Totals
	t.Count = len(c.items)
	var kg float64
	for _, it := range c.items {
		kg += it.QtyKg
		t.TotalPrice += it.TotalPrice
	}
	t.TotalKg = math.Round(kg*2) / 2
	return t
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Cart) snapshotLocked() Snapshot {
	return Snapshot{
		Items:  append([]Item{}, c.items...),
		Totals: c.totalsLocked(),
	}
}

func roundPrice(v float64) int {
	return int(math.Round(v))
}
