// Package cart models a customer's in-progress order as an explicit
// value passed to whatever surface renders it, instead of ambient
// browser storage. Carts live client-side; nothing here touches the
// store until the checkout handler receives the finished snapshot.
package cart

import (
	"github.com/munchbox/munchbox/internal/fees"
	"github.com/munchbox/munchbox/internal/models"
)

// Line is one cart entry. Identity is the (item id, meal group) pair:
// the same dish under two meal groups is two distinct lines.
type Line struct {
	Item      models.MenuItem `json:"item"`
	Quantity  int             `json:"quantity"`
	MealGroup string          `json:"mealGroup,omitempty"`
}

// Cart carries the session state the original kept in local storage:
// cart lines, favorites and the delivery flag.
type Cart struct {
	Lines     []Line            `json:"lines"`
	Favorites []models.MenuItem `json:"favorites"`
	Delivery  bool              `json:"delivery"`
}

// New returns an empty cart with delivery selected, the storefront
// default.
func New() *Cart {
	return &Cart{Delivery: true}
}

func (c *Cart) find(itemID, mealGroup string) int {
	for i, line := range c.Lines {
		if line.Item.ID == itemID && line.MealGroup == mealGroup {
			return i
		}
	}
	return -1
}

// Add puts one unit of item into the given meal group, incrementing
// the quantity when the line already exists.
func (c *Cart) Add(item models.MenuItem, mealGroup string) {
	if i := c.find(item.ID, mealGroup); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, Line{Item: item, Quantity: 1, MealGroup: mealGroup})
}

// Remove drops the line identified by itemID and mealGroup.
func (c *Cart) Remove(itemID, mealGroup string) {
	if i := c.find(itemID, mealGroup); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// SetQuantity updates a line's quantity; anything below one removes
// the line.
func (c *Cart) SetQuantity(itemID, mealGroup string, quantity int) {
	if quantity < 1 {
		c.Remove(itemID, mealGroup)
		return
	}
	if i := c.find(itemID, mealGroup); i >= 0 {
		c.Lines[i].Quantity = quantity
	}
}

// Clear empties the cart lines, keeping favorites and the delivery flag.
func (c *Cart) Clear() {
	c.Lines = nil
}

// ToggleFavorite adds item to favorites, or removes it if present.
func (c *Cart) ToggleFavorite(item models.MenuItem) {
	for i, fav := range c.Favorites {
		if fav.ID == item.ID {
			c.Favorites = append(c.Favorites[:i], c.Favorites[i+1:]...)
			return
		}
	}
	c.Favorites = append(c.Favorites, item)
}

// IsFavorite reports whether the item id is in favorites.
func (c *Cart) IsFavorite(itemID string) bool {
	for _, fav := range c.Favorites {
		if fav.ID == itemID {
			return true
		}
	}
	return false
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Item.Price * line.Quantity
	}
	return total
}

// Count is the total unit count across lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// ItemsSnapshot copies the cart into the order-item shape submitted at
// checkout, decoupled from the live menu records.
func (c *Cart) ItemsSnapshot() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, models.OrderItem{
			ID:        line.Item.ID,
			Name:      line.Item.Name,
			Price:     line.Item.Price,
			Quantity:  line.Quantity,
			Image:     line.Item.Image,
			MealGroup: line.MealGroup,
		})
	}
	return items
}

// TakeawayFee is the packaging fee over the cart's meal groups.
func (c *Cart) TakeawayFee() int {
	return fees.TakeawayFee(c.ItemsSnapshot())
}

// Total is the amount due: subtotal plus takeaway fee plus the
// delivery fee when delivery is selected. configuredDelivery comes
// from settings; zero uses the default.
func (c *Cart) Total(configuredDelivery int) int {
	return c.Subtotal() + c.TakeawayFee() + fees.DeliveryFee(c.Delivery, configuredDelivery)
}
