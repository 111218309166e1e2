package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eatclub/pantry-cli/internal/inventory"
)

func testItem(t *testing.T, name string) inventory.ItemIdentity {
	t.Helper()
	item, err := inventory.NewItemIdentity(name, "", "", 1.0)
	require.NoError(t, err)
	return item
}

func testExplanation(t *testing.T) Explanation {
	t.Helper()
	exp, err := NewExplanation("test entry", "test:fixture", 1.0)
	require.NoError(t, err)
	return exp
}

func purchaseEvent(t *testing.T, name, qty string, unit inventory.Unit) Event {
	t.Helper()
	payload, err := NewPurchasePayload(
		testItem(t, name), inventory.MustQuantity(qty, unit), nil,
		SourceUserManual, testExplanation(t),
	)
	require.NoError(t, err)
	event, err := NewEvent("tester", payload)
	require.NoError(t, err)
	return event
}

func consumeEvent(t *testing.T, name, qty string, unit inventory.Unit) Event {
	t.Helper()
	payload, err := NewConsumePayload(
		testItem(t, name), inventory.MustQuantity(qty, unit),
		SourceUserManual, testExplanation(t),
	)
	require.NoError(t, err)
	event, err := NewEvent("tester", payload)
	require.NoError(t, err)
	return event
}

func wasteEvent(t *testing.T, name, qty string, unit inventory.Unit) Event {
	t.Helper()
	payload, err := NewWastePayload(
		testItem(t, name), inventory.MustQuantity(qty, unit), WasteSpilled,
		SourceUserManual, testExplanation(t),
	)
	require.NoError(t, err)
	event, err := NewEvent("tester", payload)
	require.NoError(t, err)
	return event
}

func correctionAddEvent(t *testing.T, name, qty string, unit inventory.Unit) Event {
	t.Helper()
	payload, err := NewCorrectionAddPayload(
		testItem(t, name), inventory.MustQuantity(qty, unit),
		SourceUserManual, testExplanation(t),
	)
	require.NoError(t, err)
	event, err := NewEvent("tester", payload)
	require.NoError(t, err)
	return event
}

func correctionRemoveEvent(t *testing.T, name, qty string, unit inventory.Unit) Event {
	t.Helper()
	payload, err := NewCorrectionRemovePayload(
		testItem(t, name), inventory.MustQuantity(qty, unit),
		SourceUserManual, testExplanation(t),
	)
	require.NoError(t, err)
	event, err := NewEvent("tester", payload)
	require.NoError(t, err)
	return event
}
