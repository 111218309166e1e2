// Package recipe holds the recipe catalog, the ingredient substitution
// graph and the feasibility checker that decides whether a recipe can be
// cooked from current stock.
package recipe

import (
	"fmt"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/inventory"
)

// Difficulty grades a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IngredientRef is one required ingredient of a recipe.
type IngredientRef struct {
	Item     inventory.ItemIdentity `json:"item" yaml:"item"`
	Quantity inventory.Quantity     `json:"quantity" yaml:"quantity"`
	Notes    string                 `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (r IngredientRef) String() string {
	return fmt.Sprintf("%s %s", r.Quantity, r.Item.FullName())
}

// Recipe is a cooking recipe with an ordered ingredient list.
type Recipe struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Ingredients  []IngredientRef `json:"ingredients" yaml:"ingredients"`
	Instructions []string        `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Tags         []string        `json:"tags,omitempty" yaml:"tags,omitempty"`

	PrepTimeMinutes int        `json:"prep_time_minutes,omitempty" yaml:"prep_time_minutes,omitempty"`
	CookTimeMinutes int        `json:"cook_time_minutes,omitempty" yaml:"cook_time_minutes,omitempty"`
	Difficulty      Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// Validate checks the structural invariants of a recipe.
func (r Recipe) Validate() error {
	if r.ID == "" {
		return fault.Contract("recipe id must not be empty")
	}
	if r.Name == "" {
		return fault.Contract("recipe %s must have a name", r.ID)
	}
	if len(r.Ingredients) == 0 {
		return fault.Contract("recipe %s must have at least one ingredient", r.ID)
	}
	for i, ing := range r.Ingredients {
		if ing.Item.Name == "" {
			return fault.Contract("recipe %s ingredient %d has no item name", r.ID, i)
		}
		if ing.Quantity.Value.IsNegative() {
			return fault.Contract("recipe %s ingredient %q has negative quantity", r.ID, ing.Item.Name)
		}
		if !ing.Quantity.Unit.Valid() {
			return fault.Contract("recipe %s ingredient %q has unknown unit %q", r.ID, ing.Item.Name, ing.Quantity.Unit)
		}
	}
	return nil
}
