package ledger

import (
	"github.com/eatclub/pantry-cli/internal/inventory"
)

// ProjectState reconstructs current stock by folding over the event log
// left to right. Quantities are normalized before aggregation, keyed by
// item name. A removal that targets a name with no recorded stock creates
// a negative entry rather than erroring or clamping; a negative balance
// is a ledger anomaly that should stay visible, not be hidden.
//
// The fold is pure and O(n): replaying the same sequence twice yields
// identical results.
func ProjectState(events []Event) map[string]inventory.Quantity {
	state := make(map[string]inventory.Quantity)

	for _, e := range events {
		qty := e.Payload.Quantity.Normalize()
		name := e.Payload.Item.Name

		additive, err := e.Payload.Additive()
		if err != nil {
			// Unknown mutation type: constructors never produce one.
			continue
		}

		current, ok := state[name]
		if !ok {
			if additive {
				state[name] = qty
			} else {
				state[name] = qty.Neg()
			}
			continue
		}

		var next inventory.Quantity
		if additive {
			next, err = current.Add(qty)
		} else {
			next, err = current.Sub(qty)
		}
		if err != nil {
			// Unit-incompatible with the running balance: the entry
			// stays as-is rather than being coerced.
			continue
		}
		state[name] = next
	}

	return state
}
