package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesQuantities(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 1, Name: "Banana Bread", Price: 50}, 2)
	c.AddItem(Item{ID: 1, Name: "Banana Bread", Price: 50}, 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.Count())
	assert.Equal(t, 250.0, c.Total())
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 7, Name: "Croissant", Price: 12.5}, 0)
	assert.Equal(t, 1, c.Count())
}

func TestUpdateQtyClampsToOne(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 1, Name: "Banana Bread", Price: 50}, 3)
	c.UpdateQty(1, 0)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.UpdateQty(1, 10)
	assert.Equal(t, 10, c.Items()[0].Quantity)
}

func TestUpdateQtyUnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 1, Name: "Banana Bread", Price: 50}, 1)
	c.UpdateQty(99, 5)
	assert.Equal(t, 1, c.Count())
}

func TestRemoveItemThenTotalIsZero(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 1, Name: "Banana Bread", Price: 50}, 2)
	c.RemoveItem(1)
	assert.Zero(t, c.Total())
	assert.Zero(t, c.Count())

	// removing again is a no-op
	c.RemoveItem(1)
	assert.Empty(t, c.Items())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 1, Price: 10}, 1)
	c.AddItem(Item{ID: 2, Price: 20}, 2)
	c.Clear()
	assert.Zero(t, c.Count())
	assert.Empty(t, c.Items())
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(Item{ID: 3, Name: "Meat Pie", Price: 30}, 1)
	c.AddItem(Item{ID: 1, Name: "Banana Bread", Price: 50}, 1)
	c.AddItem(Item{ID: 2, Name: "Croissant", Price: 12.5}, 1)
	c.RemoveItem(1)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(3), items[0].ID)
	assert.Equal(t, uint(2), items[1].ID)
}

func TestOpenClose(t *testing.T) {
	c := New()
	assert.False(t, c.IsOpen())
	c.Open()
	assert.True(t, c.IsOpen())
	c.Close()
	assert.False(t, c.IsOpen())
}

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry()
	r.With("a", func(c *Cart) { c.AddItem(Item{ID: 1, Price: 10}, 1) })
	r.With("b", func(c *Cart) { c.AddItem(Item{ID: 1, Price: 10}, 4) })

	var countA, countB int
	r.With("a", func(c *Cart) { countA = c.Count() })
	r.With("b", func(c *Cart) { countB = c.Count() })
	assert.Equal(t, 1, countA)
	assert.Equal(t, 4, countB)

	r.Drop("a")
	r.With("a", func(c *Cart) { countA = c.Count() })
	assert.Zero(t, countA)
}
