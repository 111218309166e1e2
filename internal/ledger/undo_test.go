package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/inventory"
)

func TestUndoConsumptionHappyPath(t *testing.T) {
	t.Parallel()

	consume := consumeEvent(t, "Tomato", "123.45", inventory.UnitGram)
	events := []Event{
		purchaseEvent(t, "Tomato", "500", inventory.UnitGram),
		consume,
	}

	service := NewUndoService(zap.NewNop())
	correction, err := service.UndoConsumption(events, consume.ID, "alice")
	require.NoError(t, err)

	assert.Equal(t, MutationCorrectionAdd, correction.Type())
	assert.Equal(t, "alice", correction.Actor)
	assert.True(t, correction.Payload.Item.Same(consume.Payload.Item))
	// Exact decimal round-trip: the delta equals the consumed quantity.
	assert.True(t, correction.Payload.Quantity.Value.Equal(consume.Payload.Quantity.Value))
	assert.Equal(t, consume.Payload.Quantity.Unit, correction.Payload.Quantity.Unit)
}

func TestUndoConsumptionRoundTripThroughProjector(t *testing.T) {
	t.Parallel()

	consume := consumeEvent(t, "Tomato", "123.45", inventory.UnitGram)
	base := []Event{purchaseEvent(t, "Tomato", "500", inventory.UnitGram)}

	service := NewUndoService(nil)
	correction, err := service.UndoConsumption(append(base, consume), consume.ID, "alice")
	require.NoError(t, err)

	without := ProjectState(base)
	with := ProjectState(append(base, consume, correction))

	assert.True(t, without["Tomato"].Value.Equal(with["Tomato"].Value),
		"consume+undo must net to zero: %s vs %s", without["Tomato"].Value, with["Tomato"].Value)
}

func TestUndoConsumptionEventNotFound(t *testing.T) {
	t.Parallel()

	service := NewUndoService(nil)
	_, err := service.UndoConsumption([]Event{purchaseEvent(t, "Rice", "1", inventory.UnitKilogram)}, uuid.New(), "alice")
	require.Error(t, err)
	assert.Equal(t, fault.CodeMissingData, fault.CodeOf(err))
}

func TestUndoConsumptionWrongEventType(t *testing.T) {
	t.Parallel()

	purchase := purchaseEvent(t, "Rice", "1", inventory.UnitKilogram)
	service := NewUndoService(nil)

	_, err := service.UndoConsumption([]Event{purchase}, purchase.ID, "alice")
	require.Error(t, err)
	assert.Equal(t, fault.CodeInvalidState, fault.CodeOf(err))
}

func TestUndoConsumptionBlockedByLaterSameItemEvent(t *testing.T) {
	t.Parallel()

	consume := consumeEvent(t, "Tomato", "100", inventory.UnitGram)
	events := []Event{
		purchaseEvent(t, "Tomato", "500", inventory.UnitGram),
		consume,
		purchaseEvent(t, "Tomato", "300", inventory.UnitGram),
	}

	service := NewUndoService(nil)
	_, err := service.UndoConsumption(events, consume.ID, "alice")
	require.Error(t, err)
	assert.Equal(t, fault.CodeInvalidState, fault.CodeOf(err))
	assert.Contains(t, err.Error(), "modified since")
}

func TestUndoConsumptionLaterOtherItemEventsIgnored(t *testing.T) {
	t.Parallel()

	consume := consumeEvent(t, "Tomato", "100", inventory.UnitGram)
	events := []Event{
		consume,
		purchaseEvent(t, "Milk", "1", inventory.UnitLiter),
		wasteEvent(t, "Rice", "50", inventory.UnitGram),
	}

	service := NewUndoService(nil)
	_, err := service.UndoConsumption(events, consume.ID, "alice")
	require.NoError(t, err)
}

func TestUndoConsumptionVariantMattersForStaleness(t *testing.T) {
	t.Parallel()

	canned, err := inventory.NewItemIdentity("Tomato", "Canned", "", 1.0)
	require.NoError(t, err)

	payload, err := NewPurchasePayload(canned, inventory.MustQuantity("1", inventory.UnitPiece), nil, SourceUserManual, testExplanation(t))
	require.NoError(t, err)
	cannedPurchase, err := NewEvent("tester", payload)
	require.NoError(t, err)

	// Consuming plain Tomato, later touching Tomato (Canned): different
	// keys, so the undo goes through.
	consume := consumeEvent(t, "Tomato", "100", inventory.UnitGram)
	service := NewUndoService(nil)
	_, err = service.UndoConsumption([]Event{consume, cannedPurchase}, consume.ID, "alice")
	require.NoError(t, err)
}
