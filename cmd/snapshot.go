package main

import (
	"github.com/shopspring/decimal"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/ledger"
)

// snapshotFromLedger derives inventory lots from the event log. Additive
// events open lots (keeping their confidence and expiry); removals drain
// open lots of the same item oldest-first. Unit-incompatible removals
// leave lots untouched.
func snapshotFromLedger(events []ledger.Event) inventory.Snapshot {
	lotsByName := make(map[string][]*inventory.Lot)
	var order []string

	for _, e := range events {
		additive, err := e.Payload.Additive()
		if err != nil {
			continue
		}
		name := e.Payload.Item.Name

		if additive {
			if _, seen := lotsByName[name]; !seen {
				order = append(order, name)
			}
			lotsByName[name] = append(lotsByName[name], &inventory.Lot{
				Item:     e.Payload.Item,
				Quantity: e.Payload.Quantity.Normalize(),
				Expiry:   e.Payload.Expiry,
			})
			continue
		}

		remaining := e.Payload.Quantity.Normalize()
		for _, lot := range lotsByName[name] {
			if !remaining.Value.IsPositive() {
				break
			}
			if !lot.Quantity.Value.IsPositive() {
				continue
			}
			left, err := lot.Quantity.Sub(remaining)
			if err != nil {
				continue
			}
			if left.IsNegative() {
				// Lot exhausted; the rest drains from the next lot.
				remaining = left.Neg()
				lot.Quantity = zeroQuantity(lot.Quantity.Unit)
			} else {
				lot.Quantity = left
				remaining = zeroQuantity(remaining.Unit)
			}
		}
	}

	var snapshot inventory.Snapshot
	for _, name := range order {
		for _, lot := range lotsByName[name] {
			if lot.Quantity.Value.IsPositive() {
				snapshot.Lots = append(snapshot.Lots, *lot)
			}
		}
	}
	return snapshot
}

func zeroQuantity(unit inventory.Unit) inventory.Quantity {
	return inventory.Quantity{Value: decimal.Zero, Unit: unit}
}
