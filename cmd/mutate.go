package main

import (
	"github.com/spf13/cobra"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/ledger"
)

// itemFlags registers the flags shared by every mutating command.
func itemFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("item", "", "item name (required)")
	f.String("variant", "", "item variant, e.g. Canned")
	f.String("brand", "", "item brand")
	f.Float64("confidence", 1.0, "identity confidence in [0,1]")
	f.String("qty", "", "quantity value, e.g. 500 or 0.5 (required)")
	f.String("unit", "G", "unit: G, KG, ML, L, PCS, BUNCH, PINCH, PACKET")
	f.String("actor", "cli", "actor recorded on the event")
	f.String("reason", "", "explanation recorded on the event")
	f.Int64("expected-version", -1, "optimistic version precondition (-1 to skip)")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("qty")
}

// itemFromFlags builds the validated identity and quantity.
func itemFromFlags(cmd *cobra.Command) (inventory.ItemIdentity, inventory.Quantity, error) {
	f := cmd.Flags()
	name, _ := f.GetString("item")
	variant, _ := f.GetString("variant")
	brand, _ := f.GetString("brand")
	confidence, _ := f.GetFloat64("confidence")
	qtyStr, _ := f.GetString("qty")
	unit, _ := f.GetString("unit")

	item, err := inventory.NewItemIdentity(inventory.CanonicalName(name), variant, brand, confidence)
	if err != nil {
		return inventory.ItemIdentity{}, inventory.Quantity{}, err
	}
	qty, err := inventory.ParseQuantity(qtyStr, unit)
	if err != nil {
		return inventory.ItemIdentity{}, inventory.Quantity{}, err
	}
	return item, qty, nil
}

// finishEvent applies the optional version precondition and appends.
func finishEvent(cmd *cobra.Command, store ledger.Store, event ledger.Event) error {
	expected, _ := cmd.Flags().GetInt64("expected-version")
	if expected >= 0 {
		event = event.WithExpectedVersion(uint64(expected))
	}
	return appendEvent(store, event)
}

func explanationFromFlags(cmd *cobra.Command, fallback, sourceFact string) (ledger.Explanation, error) {
	reason, _ := cmd.Flags().GetString("reason")
	if reason == "" {
		reason = fallback
	}
	return ledger.NewExplanation(reason, sourceFact, 1.0)
}
