package decision

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

// A fixed reference date keeps expiry arithmetic stable across runs.
var testToday = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testItem(t *testing.T, name string, confidence float64) inventory.ItemIdentity {
	t.Helper()
	item, err := inventory.NewItemIdentity(name, "", "", confidence)
	require.NoError(t, err)
	return item
}

func testLot(t *testing.T, name string, confidence float64, value string, unit inventory.Unit) inventory.Lot {
	t.Helper()
	return inventory.Lot{
		Item:     testItem(t, name, confidence),
		Quantity: inventory.MustQuantity(value, unit),
	}
}

func expiringLot(t *testing.T, name string, confidence float64, value string, unit inventory.Unit, expiry time.Time) inventory.Lot {
	t.Helper()
	lot := testLot(t, name, confidence, value, unit)
	lot.Expiry = &expiry
	return lot
}

func testIngredient(t *testing.T, name, value string, unit inventory.Unit) recipe.IngredientRef {
	t.Helper()
	return recipe.IngredientRef{
		Item:     testItem(t, name, 1.0),
		Quantity: inventory.MustQuantity(value, unit),
	}
}

func testRecipe(t *testing.T, id string, ingredients ...recipe.IngredientRef) recipe.Recipe {
	t.Helper()
	return recipe.Recipe{ID: id, Name: id, Ingredients: ingredients}
}

func newScorer(graph *recipe.SubstitutionGraph) *Scorer {
	return NewScorer(recipe.NewFeasibilityChecker(graph))
}
