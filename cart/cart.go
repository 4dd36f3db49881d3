// Package cart holds the in-memory shopping cart for one client session.
// Carts are never persisted; a session that goes away takes its cart with it.
package cart

type Item struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // major currency units
	ImageURL    string  `json:"image_url,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
}

// Cart aggregates selected products keyed by product id. Quantity is always
// >= 1 for every stored item. Not safe for concurrent use; the Registry
// serializes access per session.
type Cart struct {
	items map[uint]*Item
	order []uint // preserves first-added order for stable listings
	open  bool
}

func New() *Cart {
	return &Cart{items: make(map[uint]*Item)}
}

// AddItem inserts item with quantity qty, or increments the stored quantity
// when the id is already present. qty values below 1 count as 1.
func (c *Cart) AddItem(item Item, qty int) {
	if qty < 1 {
		qty = 1
	}
	if existing, ok := c.items[item.ID]; ok {
		existing.Quantity += qty
		return
	}
	item.Quantity = qty
	c.items[item.ID] = &item
	c.order = append(c.order, item.ID)
}

// UpdateQty sets the quantity for id, clamped to a minimum of 1.
// No-op when id is absent.
func (c *Cart) UpdateQty(id uint, qty int) {
	item, ok := c.items[id]
	if !ok {
		return
	}
	if qty < 1 {
		qty = 1
	}
	item.Quantity = qty
}

// RemoveItem deletes the entry for id; no-op when absent.
func (c *Cart) RemoveItem(id uint) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.items = make(map[uint]*Item)
	c.order = nil
}

// Count is the sum of quantities across all items.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Total is the sum of price*quantity across all items, in major units.
func (c *Cart) Total() float64 {
	var t float64
	for _, item := range c.items {
		t += item.Price * float64(item.Quantity)
	}
	return t
}

func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

func (c *Cart) Open()        { c.open = true }
func (c *Cart) Close()       { c.open = false }
func (c *Cart) IsOpen() bool { return c.open }
