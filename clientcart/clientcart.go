// Package clientcart is the storefront's local cart cache: a
// denormalized copy of the shopper's line items used for optimistic
// rendering, persisted write-through to a JSON file the way the web
// client mirrors its cart to localStorage. It is intentionally not
// reconciled with the server-side cart; the two are independent caches.
package clientcart

import (
	"encoding/json"
	"os"

	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

// Item is one cached line: the full product plus a quantity. Lines are
// unique by product id.
type Item struct {
	models.Product
	Quantity int `json:"quantity"`
}

type Cache struct {
	path  string
	items []Item
}

// Open loads the cache from path. A missing or unreadable file silently
// yields an empty cart, matching how the web client treats a corrupt
// localStorage entry.
func Open(path string) *Cache {
	c := &Cache{path: path, items: []Item{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return c
	}
	if items != nil {
		c.items = items
	}
	return c
}

// Items returns a copy of the cached lines in insertion order.
func (c *Cache) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// AddToCart adds one unit of the product, always incrementing by a
// fixed +1 when the product is already present.
func (c *Cache) AddToCart(product models.Product) {
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}
	c.items = append(c.items, Item{Product: product, Quantity: 1})
	c.persist()
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *Cache) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveFromCart(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.persist()
}

func (c *Cache) RemoveFromCart(id string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
}

func (c *Cache) ClearCart() {
	c.items = []Item{}
	c.persist()
}

// Subtotal is recomputed on every read, never stored.
func (c *Cache) Subtotal() int {
	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

// persist mirrors the full list to disk on every mutation. Write errors
// are swallowed just as localStorage quota errors are; the in-memory
// copy stays usable.
func (c *Cache) persist() {
	data, err := json.Marshal(c.items)
	if err != nil {
		return
	}
	_ = os.WriteFile(c.path, data, 0o644)
}
