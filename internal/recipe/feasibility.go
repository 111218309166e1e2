package recipe

import (
	"time"

	"github.com/eatclub/pantry-cli/internal/inventory"
)

// FeasibilityChecker decides whether a recipe is cookable from current
// stock, directly or through substitutions.
type FeasibilityChecker struct {
	graph *SubstitutionGraph
}

// NewFeasibilityChecker builds a checker. A nil graph disables
// substitution lookups.
func NewFeasibilityChecker(graph *SubstitutionGraph) *FeasibilityChecker {
	return &FeasibilityChecker{graph: graph}
}

// Graph exposes the substitution graph for collaborators that share the
// checker's candidate logic (scoring, explanations).
func (c *FeasibilityChecker) Graph() *SubstitutionGraph { return c.graph }

// AggregateStock sums in-stock lots per identity key after unit
// normalization. Lots whose units are incompatible with the running sum
// for their key (e.g. mass vs count) are skipped, not combined.
func AggregateStock(snapshot inventory.Snapshot, today time.Time) map[inventory.Key]inventory.Quantity {
	stock := make(map[inventory.Key]inventory.Quantity)
	for _, lot := range snapshot.StockLots(today) {
		key := lot.Item.Key()
		current, ok := stock[key]
		if !ok {
			stock[key] = lot.Quantity.Normalize()
			continue
		}
		sum, err := current.Add(lot.Quantity)
		if err != nil {
			continue
		}
		stock[key] = sum
	}
	return stock
}

// CanCook reports whether every ingredient of the recipe is satisfiable
// from the snapshot: the exact item first, then each substitute in
// ascending penalty order, with the identical sufficiency test.
func (c *FeasibilityChecker) CanCook(r Recipe, snapshot inventory.Snapshot, today time.Time) bool {
	stock := AggregateStock(snapshot, today)

	for _, ingredient := range r.Ingredients {
		if c.satisfied(ingredient, stock) {
			continue
		}
		return false
	}
	return true
}

func (c *FeasibilityChecker) satisfied(ingredient IngredientRef, stock map[inventory.Key]inventory.Quantity) bool {
	if sufficient(stock, ingredient.Item.Key(), ingredient.Quantity) {
		return true
	}
	if c.graph == nil {
		return false
	}
	for _, sub := range c.graph.Substitutes(ingredient.Item) {
		if sufficient(stock, sub.Item.Key(), ingredient.Quantity) {
			return true
		}
	}
	return false
}

// sufficient reports whether the aggregate for key meets or exceeds the
// required quantity. Missing aggregates and unit-incompatible comparisons
// both fail the test.
func sufficient(stock map[inventory.Key]inventory.Quantity, key inventory.Key, required inventory.Quantity) bool {
	available, ok := stock[key]
	if !ok {
		return false
	}
	less, err := available.Less(required)
	if err != nil {
		return false
	}
	return !less
}
