// Package depletion drafts the consume events that cooking a recipe
// implies. Drafted events are returned to the caller for appending; the
// service never writes to the ledger itself.
package depletion

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/ledger"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

// Service drafts recipe-linked depletion events.
type Service struct {
	log *zap.Logger
}

// NewService returns a depletion service logging through the given logger.
func NewService(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log}
}

// DepleteRecipe drafts one consume event per ingredient, scaled by
// factor (e.g. 0.5 for half a recipe). The scaling is exact decimal
// arithmetic, so a full deplete-then-undo round-trips to zero drift.
func (s *Service) DepleteRecipe(r recipe.Recipe, actor string, factor string) ([]ledger.Event, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	f, err := decimal.NewFromString(factor)
	if err != nil {
		return nil, fault.Contract("factor %q is not a decimal", factor)
	}
	if f.IsNegative() {
		return nil, fault.Invalid("factor must be non-negative, got %s", factor)
	}

	explanation, err := ledger.NewExplanation(
		fmt.Sprintf("Cooking: %s (x%s)", r.Name, f),
		"Recipe:"+r.ID,
		1.0,
	)
	if err != nil {
		return nil, err
	}

	events := make([]ledger.Event, 0, len(r.Ingredients))
	for _, ingredient := range r.Ingredients {
		payload, err := ledger.NewConsumePayload(
			ingredient.Item,
			ingredient.Quantity.Mul(f),
			ledger.SourceUserManual,
			explanation,
		)
		if err != nil {
			return nil, err
		}
		event, err := ledger.NewEvent(actor, payload)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	s.log.Info("drafted depletion",
		zap.String("recipe", r.ID),
		zap.String("factor", f.String()),
		zap.Int("events", len(events)),
	)

	return events, nil
}
