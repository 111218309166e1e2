// Package decision turns stock and recipes into a recommendation: score
// feasible recipes, pick the best, and explain the choice. Scoring is
// pure: the same (recipe, inventory, reference date) always produces the
// same score and explanation.
package decision

import (
	"time"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

// ExpiryBoost is the flat bonus added when a contributing lot expires
// within the expiry window.
const ExpiryBoost = 1.0

// expiryWindow is how far ahead of the reference date a lot counts as
// expiring: strictly before today + 2 days.
const expiryWindow = 48 * time.Hour

// Scorer computes confidence- and expiry-aware recipe scores.
type Scorer struct {
	checker *recipe.FeasibilityChecker
}

// NewScorer builds a Scorer sharing the checker's substitution graph.
func NewScorer(checker *recipe.FeasibilityChecker) *Scorer {
	return &Scorer{checker: checker}
}

// Score returns 0 for infeasible recipes. Otherwise: for each ingredient
// take the maximum confidence among its direct and substitute candidate
// lots, take the minimum of those maxima across the recipe, and add the
// expiry boost when any candidate lot expires inside the window.
func (s *Scorer) Score(r recipe.Recipe, snapshot inventory.Snapshot, today time.Time) float64 {
	if !s.checker.CanCook(r, snapshot, today) {
		return 0.0
	}

	lotsByKey := stockLotsByKey(snapshot, today)
	threshold := today.Add(expiryWindow)

	minConfidence := 1.0
	expiring := false

	for _, ingredient := range r.Ingredients {
		candidates := s.candidates(ingredient, lotsByKey)
		if len(candidates) == 0 {
			// CanCook held, so every ingredient has candidates; an empty
			// set means the snapshot changed between calls.
			return 0.0
		}

		best := 0.0
		for _, lot := range candidates {
			if lot.Item.Confidence > best {
				best = lot.Item.Confidence
			}
			if !expiring && lot.Expiry != nil && lot.Expiry.Before(threshold) {
				expiring = true
			}
		}
		if best < minConfidence {
			minConfidence = best
		}
	}

	score := minConfidence
	if expiring {
		score += ExpiryBoost
	}
	return score
}

// candidates returns the in-stock lots that could contribute to an
// ingredient: exact identity matches plus lots of any substitute.
func (s *Scorer) candidates(ingredient recipe.IngredientRef, lotsByKey map[inventory.Key][]inventory.Lot) []inventory.Lot {
	var out []inventory.Lot
	out = append(out, lotsByKey[ingredient.Item.Key()]...)

	if graph := s.checker.Graph(); graph != nil {
		for _, sub := range graph.Substitutes(ingredient.Item) {
			out = append(out, lotsByKey[sub.Item.Key()]...)
		}
	}
	return out
}

// stockLotsByKey groups in-stock lots by aggregation key.
func stockLotsByKey(snapshot inventory.Snapshot, today time.Time) map[inventory.Key][]inventory.Lot {
	byKey := make(map[inventory.Key][]inventory.Lot)
	for _, lot := range snapshot.StockLots(today) {
		key := lot.Item.Key()
		byKey[key] = append(byKey[key], lot)
	}
	return byKey
}
