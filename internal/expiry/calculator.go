// Package expiry predicts expiry dates for purchased items from a static
// shelf-life table. The prediction is deterministic: same item and
// purchase date always yield the same expiry.
package expiry

import (
	"time"

	"github.com/eatclub/pantry-cli/internal/inventory"
)

// DefaultShelfLifeDays is the conservative fallback for unknown items.
const DefaultShelfLifeDays = 3

// builtinShelfLife maps item names to shelf life in days from purchase.
var builtinShelfLife = map[string]int{
	"Tomato":  7,
	"Lettuce": 5,
	"Milk":    7,
	"Eggs":    21,
	"Rice":    365,
	"Pasta":   365,
	"Chicken": 2, // raw
}

// Calculator predicts expiry dates. Overrides layer on top of the
// built-in table.
type Calculator struct {
	overrides map[string]int
}

// NewCalculator returns a Calculator with optional per-item overrides
// (item name -> shelf life in days, typically from config).
func NewCalculator(overrides map[string]int) *Calculator {
	return &Calculator{overrides: overrides}
}

// ShelfLifeDays returns the shelf life for an item name. Lookup ignores
// variant and brand.
func (c *Calculator) ShelfLifeDays(item inventory.ItemIdentity) int {
	if c.overrides != nil {
		if days, ok := c.overrides[item.Name]; ok {
			return days
		}
	}
	if days, ok := builtinShelfLife[item.Name]; ok {
		return days
	}
	return DefaultShelfLifeDays
}

// PredictExpiry returns the predicted expiry date for an item purchased
// on the given date.
func (c *Calculator) PredictExpiry(item inventory.ItemIdentity, purchaseDate time.Time) time.Time {
	return purchaseDate.AddDate(0, 0, c.ShelfLifeDays(item))
}
