package decision

import (
	"fmt"
	"time"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/ledger"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

// Confidence tier boundaries for suggestion explanations.
const (
	highConfidenceTier   = 0.9
	mediumConfidenceTier = 0.6
)

// ExplanationGenerator produces deterministic, human-readable rationales
// for recommendations. An expiring ingredient takes precedence over the
// generic confidence tiers.
type ExplanationGenerator struct {
	scorer *Scorer
}

// NewExplanationGenerator builds a generator sharing the scorer's
// candidate logic.
func NewExplanationGenerator(scorer *Scorer) *ExplanationGenerator {
	return &ExplanationGenerator{scorer: scorer}
}

// Suggestion explains why a recipe was suggested. The earliest-expiring
// contributing lot wins, phrased as "today", "tomorrow" or "in N days";
// otherwise the explanation falls back to a confidence tier.
func (g *ExplanationGenerator) Suggestion(r recipe.Recipe, snapshot inventory.Snapshot, score float64, today time.Time) ledger.Explanation {
	lotsByKey := stockLotsByKey(snapshot, today)
	threshold := today.Add(expiryWindow)

	var earliest *inventory.Lot
	for _, ingredient := range r.Ingredients {
		for _, lot := range g.scorer.candidates(ingredient, lotsByKey) {
			if lot.Expiry == nil || !lot.Expiry.Before(threshold) {
				continue
			}
			if earliest == nil || lot.Expiry.Before(*earliest.Expiry) {
				l := lot
				earliest = &l
			}
		}
	}

	if earliest != nil {
		days := int(earliest.Expiry.Sub(truncateDay(today)).Hours() / 24)
		var when string
		switch {
		case days <= 0:
			when = "today"
		case days == 1:
			when = "tomorrow"
		default:
			when = fmt.Sprintf("in %d days", days)
		}
		return ledger.Explanation{
			Reason:     fmt.Sprintf("Recommended because %s expires %s.", earliest.Item.Name, when),
			SourceFact: "rule:expiry_prioritization",
			Confidence: 1.0,
		}
	}

	switch {
	case score >= highConfidenceTier:
		return ledger.Explanation{
			Reason:     "Excellent match with high confidence inventory.",
			SourceFact: "rule:high_confidence",
			Confidence: 1.0,
		}
	case score >= mediumConfidenceTier:
		return ledger.Explanation{
			Reason:     "Good match.",
			SourceFact: "rule:medium_confidence",
			Confidence: 1.0,
		}
	default:
		return ledger.Explanation{
			Reason:     "Low confidence match.",
			SourceFact: "rule:low_confidence",
			Confidence: 1.0,
		}
	}
}

// AskUser explains why the recommender is asking instead of suggesting.
func (g *ExplanationGenerator) AskUser(score float64) ledger.Explanation {
	return ledger.Explanation{
		Reason:     fmt.Sprintf("Confidence score %.1f is too low.", score),
		SourceFact: "rule:confidence_threshold",
		Confidence: 1.0,
	}
}

// NoFeasible explains an empty recommendation.
func (g *ExplanationGenerator) NoFeasible() ledger.Explanation {
	return ledger.Explanation{
		Reason:     "No feasible recipes found.",
		SourceFact: "rule:feasibility",
		Confidence: 1.0,
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
